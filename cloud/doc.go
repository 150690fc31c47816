/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package cloud

// DigitalOcean, Azure and GCP are named in the environment-variable surface
// (DIGITALOCEAN_ACCESS_TOKEN, DIGITALOCEAN_KEY_PATH, AZURE_SUBSCRIPTION_ID,
// AZURE_PUB_KEY_PATH, AZURE_PRIV_KEY_PATH, GCP_KEY_PATH, GCP_PROJECT_ID) but
// have no client SDK anywhere in the dependency pack this module was built
// against. Rather than hand-write a bespoke HTTP client against each
// provider's API, these stay named constants only; only AWS (aws.go) is
// backed by a real client, since aws-sdk-go-v2 is the one cloud SDK the
// pack actually carries.
const (
	EnvDigitalOceanAccessToken = "DIGITALOCEAN_ACCESS_TOKEN"
	EnvDigitalOceanKeyPath     = "DIGITALOCEAN_KEY_PATH"
	EnvAzureSubscriptionID     = "AZURE_SUBSCRIPTION_ID"
	EnvAzurePubKeyPath         = "AZURE_PUB_KEY_PATH"
	EnvAzurePrivKeyPath        = "AZURE_PRIV_KEY_PATH"
	EnvGCPKeyPath              = "GCP_KEY_PATH"
	EnvGCPProjectID            = "GCP_PROJECT_ID"
)
