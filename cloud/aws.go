/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package cloud provides thin instance-lifecycle wrappers for the cloud
// providers a target host may live on. Only AWS is backed by a real SDK in
// this build; the rest are documented stubs (see doc.go).
package cloud

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Environment variables the AWS provider and the caller's SSH transport
// consume: AWS_KEY_PATH is the private key file for the SSH session once
// the instance is up; AWS_KEYNAME is the EC2 key-pair name to launch with.
const (
	EnvAWSKeyPath = "AWS_KEY_PATH"
	EnvAWSKeyName = "AWS_KEYNAME"
)

// AWSProvider wraps the single EC2 client call the tool needs: spin up a
// disposable instance to reconnoiter, and tear it down when done.
type AWSProvider struct {
	client *ec2.Client
	region string
}

// NewAWSProvider loads credentials from the default AWS chain (env vars,
// shared config, instance profile) and binds to region.
func NewAWSProvider(ctx context.Context, region string) (*AWSProvider, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("cloud/aws: load config: %w", err)
	}
	return &AWSProvider{client: ec2.NewFromConfig(cfg), region: region}, nil
}

// LaunchOptions configures a disposable reconnaissance instance.
type LaunchOptions struct {
	AMI          string
	InstanceType string
	KeyName      string // defaults to AWS_KEYNAME env var when empty
}

// Launch starts one instance and returns its instance id. KeyPath
// (AWS_KEY_PATH) is consumed by the SSH transport once the instance is
// reachable, not by this call.
func (p *AWSProvider) Launch(ctx context.Context, opts LaunchOptions) (string, error) {
	keyName := opts.KeyName
	if keyName == "" {
		keyName = os.Getenv(EnvAWSKeyName)
	}

	out, err := p.client.RunInstances(ctx, &ec2.RunInstancesInput{
		ImageId:      aws.String(opts.AMI),
		InstanceType: types.InstanceType(opts.InstanceType),
		KeyName:      aws.String(keyName),
		MinCount:     aws.Int32(1),
		MaxCount:     aws.Int32(1),
	})
	if err != nil {
		return "", fmt.Errorf("cloud/aws: run instances: %w", err)
	}
	if len(out.Instances) == 0 {
		return "", fmt.Errorf("cloud/aws: run instances: no instance returned")
	}
	return aws.ToString(out.Instances[0].InstanceId), nil
}

// Terminate shuts the instance down permanently.
func (p *AWSProvider) Terminate(ctx context.Context, instanceID string) error {
	_, err := p.client.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return fmt.Errorf("cloud/aws: terminate %s: %w", instanceID, err)
	}
	return nil
}
