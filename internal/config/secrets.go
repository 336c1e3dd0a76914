package config

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Credential values of the form
// sm://projects/{project}/secrets/{secret}[/versions/{version}]
// are read from Secret Manager at startup.
const secretPrefix = "sm://"

type SecretSource interface {
	Secret(ctx context.Context, name string) (string, error)
}

type secretManagerSource struct {
	client *secretmanager.Client
}

func NewSecretManagerSource(ctx context.Context) (*secretManagerSource, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("secret manager client: %w", err)
	}
	return &secretManagerSource{client: client}, nil
}

func (s *secretManagerSource) Secret(ctx context.Context, name string) (string, error) {
	if !strings.Contains(name, "/versions/") {
		name += "/versions/latest"
	}
	res, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", fmt.Errorf("access secret %s: %w", name, err)
	}
	return string(res.Payload.Data), nil
}

func (s *secretManagerSource) Close() error {
	return s.client.Close()
}

func (c *Config) credentials() []*string {
	return []*string{
		&c.GeminiAPIKey,
		&c.Search.APIKey,
		&c.Weather.APIKey,
		&c.News.APIKey,
		&c.Places.APIKey,
	}
}

func (c *Config) hasSecretRefs() bool {
	for _, v := range c.credentials() {
		if strings.HasPrefix(*v, secretPrefix) {
			return true
		}
	}
	return false
}

// ResolveSecrets replaces every sm:// credential with the secret payload.
func (c *Config) ResolveSecrets(ctx context.Context, src SecretSource) error {
	for _, v := range c.credentials() {
		name, ok := strings.CutPrefix(*v, secretPrefix)
		if !ok {
			continue
		}
		value, err := src.Secret(ctx, name)
		if err != nil {
			return err
		}
		*v = strings.TrimSpace(value)
	}
	return nil
}
