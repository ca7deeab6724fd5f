package config

import (
	"context"
	"crypto/tls"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

const (
	// DefaultLocalEndpoint is where localstack listens by default
	DefaultLocalEndpoint = "https://127.0.0.1:4566"
	localstackKey        = "dummyKey"
)

// InitCfg loads the aws configuration from the environment and the shared
// aws config files
func InitCfg(ctx context.Context, region string) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, config.WithRegion(region))
}

// InitLocalCfg returns a configuration that points every client to a
// localstack endpoint with static credentials
func InitLocalCfg(ctx context.Context, endpoint string, region string) (aws.Config, error) {
	if endpoint == "" {
		endpoint = DefaultLocalEndpoint
	}

	localstackEndpointResolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               endpoint,
				HostnameImmutable: true,
			}, nil
		},
	)

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithEndpointResolverWithOptions(localstackEndpointResolver),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(localstackKey, localstackKey, ""),
		),
	)
	if err != nil {
		return aws.Config{}, err
	}

	// localstack serves a self signed certificate
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	cfg.HTTPClient = &http.Client{Transport: tr}

	return cfg, nil
}

// AWSConfig returns the aws configuration for the job config
func (c *Config) AWSConfig(ctx context.Context) (aws.Config, error) {
	if c.Local {
		return InitLocalCfg(ctx, c.LocalEndpoint, c.Region)
	}
	return InitCfg(ctx, c.Region)
}
