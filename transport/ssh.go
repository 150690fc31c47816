/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package transport

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"
)

// SSHConfig describes how to reach and authenticate to the target host.
type SSHConfig struct {
	Host           string
	Port           int
	User           string
	KeyPath        string // PEM-encoded private key file, optional
	Password       string // optional, used when KeyPath is empty
	ConnectTimeout time.Duration
}

// SSH is a Transport backed by a real golang.org/x/crypto/ssh session.
// Unlike Tube, it uses exec_command directly per invocation, so sentinel
// framing and echo stripping do not apply.
type SSH struct {
	client *ssh.Client
	logger *zap.Logger
}

// DialSSH opens and authenticates an SSH connection per cfg.
func DialSSH(cfg SSHConfig, logger *zap.Logger) (*SSH, error) {
	auth, err := sshAuthMethods(cfg)
	if err != nil {
		return nil, fmt.Errorf("ssh auth setup: %w", err)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	clientCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec // recon tool, not a hardened client
		Timeout:         timeout,
	}

	addr := net.JoinHostPort(cfg.Host, portOrDefault(cfg.Port))
	client, err := ssh.Dial("tcp", addr, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	return &SSH{client: client, logger: logger}, nil
}

func sshAuthMethods(cfg SSHConfig) ([]ssh.AuthMethod, error) {
	if cfg.KeyPath != "" {
		keyBytes, err := os.ReadFile(cfg.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("read private key: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
	}
	return []ssh.AuthMethod{ssh.Password(cfg.Password)}, nil
}

func portOrDefault(port int) string {
	if port == 0 {
		port = 22
	}
	return fmt.Sprintf("%d", port)
}

func (s *SSH) Send(ctx context.Context, cmd string) (CommandResult, error) {
	session, err := s.client.NewSession()
	if err != nil {
		return CommandResult{}, fmt.Errorf("new session: %w", err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	done := make(chan error, 1)
	go func() { done <- session.Run(cmd) }()

	select {
	case <-ctx.Done():
		_ = session.Signal(ssh.SIGKILL)
		return CommandResult{}, ctx.Err()
	case err := <-done:
		exitCode := 0
		if err != nil {
			if exitErr, ok := err.(*ssh.ExitError); ok {
				exitCode = exitErr.ExitStatus()
			} else {
				return CommandResult{}, fmt.Errorf("run %q: %w", cmd, err)
			}
		}
		result := CommandResult{
			Stdout:   splitLines(stdout.String()),
			Stderr:   splitLines(stderr.String()),
			ExitCode: exitCode,
		}
		s.logger.Debug("ssh send", zap.String("cmd", cmd), zap.Int("exit_code", exitCode))
		return result, nil
	}
}

func (s *SSH) Upload(ctx context.Context, local, remote string) error {
	return fmt.Errorf("upload not implemented: out of scope for the recon core")
}

func (s *SSH) Download(ctx context.Context, remote, local string) error {
	return fmt.Errorf("download not implemented: out of scope for the recon core")
}

func (s *SSH) Close() error {
	return s.client.Close()
}
