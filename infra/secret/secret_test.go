package secret

import (
	"sync"
	"testing"

	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/common/resource"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

type mocks struct{}

func (mocks) NewResource(args pulumi.MockResourceArgs) (string, resource.PropertyMap, error) {
	outs := args.Inputs
	if args.TypeToken == "gcp:serviceaccount/account:Account" {
		outs["email"] = resource.NewStringProperty("travel-api@p.iam.gserviceaccount.com")
	}
	return args.Name + "_id", outs, nil
}

func (mocks) Call(args pulumi.MockCallArgs) (resource.PropertyMap, error) {
	return args.Args, nil
}

func TestManagerAdd(t *testing.T) {
	t.Setenv("PULUMI_CONFIG", `{"gcp:project":"p"}`)

	var wg sync.WaitGroup
	err := pulumi.RunErr(func(ctx *pulumi.Context) error {
		prov, err := gcp.NewProvider(ctx, "gcpProvider", &gcp.ProviderArgs{})
		if err != nil {
			return err
		}
		sa, err := serviceaccount.NewAccount(ctx, "sa", &serviceaccount.AccountArgs{
			AccountId: pulumi.String("travel-api"),
		}, pulumi.Provider(prov))
		if err != nil {
			return err
		}

		m, err := SetupSecretManager(ctx, prov, sa)
		if err != nil {
			return err
		}
		if got := len(m.Resources()); got != 2 {
			t.Errorf("expected service and accessor resources, got %d", got)
		}

		id, err := m.Add(ctx, "geminiApiKey", pulumi.String("key"))
		if err != nil {
			return err
		}

		wg.Add(1)
		id.ApplyT(func(v string) error {
			defer wg.Done()
			if v != "geminiApiKey" {
				t.Errorf("secret id mismatch: %q", v)
			}
			return nil
		})
		return nil
	}, pulumi.WithMocks("travel-backend", "test", mocks{}))
	if err != nil {
		t.Fatalf("program error: %v", err)
	}
	wg.Wait()
}
