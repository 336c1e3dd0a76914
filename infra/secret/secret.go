package secret

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/secretmanager"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// Manager creates API key secrets readable by the service account it was
// set up for.
type Manager struct {
	prov     *gcp.Provider
	service  *projects.Service
	accessor *projects.IAMMember
}

func SetupSecretManager(ctx *pulumi.Context, prov *gcp.Provider, apiSA *serviceaccount.Account) (*Manager, error) {
	service, err := projects.NewService(ctx, "secretManagerService", &projects.ServiceArgs{
		Service: pulumi.String("secretmanager.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	accessor, err := grantAccessor(ctx, prov, apiSA, service)
	if err != nil {
		return nil, err
	}

	return &Manager{prov: prov, service: service, accessor: accessor}, nil
}

// Resources must be depended on by anything reading the secrets at runtime.
func (m *Manager) Resources() []pulumi.Resource {
	return []pulumi.Resource{m.service, m.accessor}
}

// Add stores value as the first version of secretID and returns the secret
// ID for use in Cloud Run secret references.
func (m *Manager) Add(ctx *pulumi.Context, secretID string, value pulumi.StringInput) (pulumi.StringOutput, error) {
	var id pulumi.StringOutput

	s, err := secretmanager.NewSecret(ctx, secretID+"Secret", &secretmanager.SecretArgs{
		SecretId: pulumi.String(secretID),
		Replication: &secretmanager.SecretReplicationArgs{
			Auto: &secretmanager.SecretReplicationAutoArgs{},
		},
		Labels: pulumi.StringMap{"kind": pulumi.String("api-key")},
	},
		pulumi.Provider(m.prov),
		pulumi.DependsOn([]pulumi.Resource{m.service}),
	)
	if err != nil {
		return id, err
	}

	_, err = secretmanager.NewSecretVersion(ctx, secretID+"SecretVersion", &secretmanager.SecretVersionArgs{
		Secret:     s.ID(),
		SecretData: value,
	},
		pulumi.Provider(m.prov),
	)
	if err != nil {
		return id, err
	}

	return s.SecretId, nil
}

func grantAccessor(ctx *pulumi.Context,
	prov *gcp.Provider,
	apiSA *serviceaccount.Account,
	res ...pulumi.Resource) (*projects.IAMMember, error) {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")

	// Read access for secret env vars and sm:// config values.
	return projects.NewIAMMember(ctx, "secretManagerAccessor", &projects.IAMMemberArgs{
		Project: pulumi.String(projectID),
		Role:    pulumi.String("roles/secretmanager.secretAccessor"),
		Member: apiSA.Email.ApplyT(func(email string) string {
			return fmt.Sprintf("serviceAccount:%s", email)
		}).(pulumi.StringOutput),
	},
		pulumi.Provider(prov),
		pulumi.DependsOn(res),
	)
}
