package cloudrun

import (
	"fmt"
	"strconv"

	"github.com/pulumi/pulumi-docker/sdk/v4/go/docker"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/cloudrun"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/GregMSThompson/travel-backend/infra/common"
	infradocker "github.com/GregMSThompson/travel-backend/infra/docker"
	"github.com/GregMSThompson/travel-backend/infra/secret"
)

// apiSecret maps a container env var to the Pulumi config key holding its
// value and the Secret Manager secret it is stored in.
type apiSecret struct {
	envVar    string
	configKey string
	secretID  string
}

var apiSecrets = []apiSecret{
	{envVar: "GEMINI_API_KEY", configKey: "geminiApiKey", secretID: "geminiApiKey"},
	{envVar: "SEARCH_API_KEY", configKey: "searchApiKey", secretID: "searchApiKey"},
	{envVar: "WEATHERBIT_API_KEY", configKey: "weatherbitApiKey", secretID: "weatherbitApiKey"},
	{envVar: "GNEWS_API_KEY", configKey: "gnewsApiKey", secretID: "gnewsApiKey"},
	{envVar: "GPLACES_API_KEY", configKey: "gplacesApiKey", secretID: "gplacesApiKey"},
}

func SetupCloudRun(ctx *pulumi.Context, prov *gcp.Provider, res ...pulumi.Resource) (pulumi.StringPtrOutput, error) {
	var url pulumi.StringPtrOutput

	img, err := buildApiImage(ctx, res...)
	if err != nil {
		return url, err
	}

	srv, err := enableCloudRun(ctx, prov)
	if err != nil {
		return url, err
	}

	apiSA, err := createServiceAccount(ctx, prov)
	if err != nil {
		return url, err
	}

	secrets, err := secret.SetupSecretManager(ctx, prov, apiSA)
	if err != nil {
		return url, err
	}

	envs, err := createSecretEnvs(ctx, secrets)
	if err != nil {
		return url, err
	}

	deps := append([]pulumi.Resource{srv}, secrets.Resources()...)
	svc, err := createCloudRunService(ctx, img, apiSA, envs, prov, deps...)
	if err != nil {
		return url, err
	}

	err = setIAMAccessPolicy(ctx, svc, prov)
	if err != nil {
		return url, err
	}

	return svc.Statuses.Index(pulumi.Int(0)).Url(), nil
}

func buildApiImage(ctx *pulumi.Context, res ...pulumi.Resource) (*docker.Image, error) {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")
	region := gcpCfg.Require("region")

	hash, err := common.GenerateHash("../")
	if err != nil {
		return nil, err
	}

	return docker.NewImage(ctx, "travelApiImage", &docker.ImageArgs{
		Build: docker.DockerBuildArgs{
			Platform:   pulumi.String("linux/amd64"),
			Context:    pulumi.String(".."),                    // build from repo root
			Dockerfile: pulumi.String("../cmd/api/Dockerfile"), // Dockerfile path relative to repo root
		},
		ImageName: pulumi.String(fmt.Sprintf("%s-docker.pkg.dev/%s/%s/travel-api:%s",
			region, projectID, infradocker.RepositoryID, hash)),
	},
		pulumi.DependsOn(res),
	)
}

func enableCloudRun(ctx *pulumi.Context, prov *gcp.Provider) (*projects.Service, error) {
	return projects.NewService(ctx, "cloudRunService", &projects.ServiceArgs{
		Service: pulumi.String("run.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
}

func createServiceAccount(ctx *pulumi.Context, prov *gcp.Provider) (*serviceaccount.Account, error) {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")

	apiSA, err := serviceaccount.NewAccount(ctx, "travelApiServiceAccount", &serviceaccount.AccountArgs{
		AccountId:   pulumi.String("travel-api"),
		DisplayName: pulumi.String("Travel API Service Account"),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	_, err = projects.NewIAMMember(ctx, "vertexAccess", &projects.IAMMemberArgs{
		Role: pulumi.String("roles/aiplatform.user"), // Gemini on Vertex AI
		Member: apiSA.Email.ApplyT(func(email string) string {
			return fmt.Sprintf("serviceAccount:%s", email)
		}).(pulumi.StringOutput),
		Project: pulumi.String(projectID),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	return apiSA, nil
}

func createCloudRunService(ctx *pulumi.Context,
	img *docker.Image,
	apiSA *serviceaccount.Account,
	secretEnvs cloudrun.ServiceTemplateSpecContainerEnvArray,
	prov *gcp.Provider,
	res ...pulumi.Resource) (*cloudrun.Service, error) {
	gcpCfg := config.New(ctx, "gcp")
	crCfg := config.New(ctx, "cloudrun")
	travelCfg := config.New(ctx, "travel")

	projectID := gcpCfg.Require("project")
	region := gcpCfg.Require("region")
	minScale := crCfg.Require("minScale")
	maxScale := crCfg.Require("maxScale")
	cpu := crCfg.Require("cpu")
	memory := crCfg.Require("memory")
	concurrency := crCfg.Require("concurrency")
	logLevel := crCfg.Require("logLevel")
	timeout, _ := strconv.Atoi(crCfg.Require("timeout"))
	frontendURL := travelCfg.Require("frontendUrl")
	engine := travelCfg.Get("engine")
	if engine == "" {
		engine = "adk"
	}
	model := travelCfg.Get("model")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	plain := []struct{ name, value string }{
		{"PROJECTID", projectID},
		{"REGION", region},
		{"LOGLEVEL", logLevel},
		{"LOGFORMAT", "json"},
		{"FRONTEND_URL", frontendURL},
		{"AGENTENGINE", engine},
		{"GEMINIMODEL", model},
	}
	envs := cloudrun.ServiceTemplateSpecContainerEnvArray{}
	for _, e := range plain {
		envs = append(envs, &cloudrun.ServiceTemplateSpecContainerEnvArgs{
			Name:  pulumi.String(e.name),
			Value: pulumi.String(e.value),
		})
	}
	envs = append(envs, secretEnvs...)

	return cloudrun.NewService(ctx, "travelApiService", &cloudrun.ServiceArgs{
		Location: pulumi.String(region),

		Template: &cloudrun.ServiceTemplateArgs{

			Metadata: &cloudrun.ServiceTemplateMetadataArgs{
				Annotations: pulumi.StringMap{
					// Autoscaling bounds
					"autoscaling.knative.dev/minScale": pulumi.String(minScale),
					"autoscaling.knative.dev/maxScale": pulumi.String(maxScale),

					// Instance sizing
					"run.googleapis.com/cpu":    pulumi.String(cpu),
					"run.googleapis.com/memory": pulumi.String(memory),

					"run.googleapis.com/cpu-throttling": pulumi.String("true"),

					// Concurrent requests per container
					"run.googleapis.com/container-concurrency": pulumi.String(concurrency),
				},
			},

			Spec: &cloudrun.ServiceTemplateSpecArgs{
				ServiceAccountName: apiSA.Email,
				TimeoutSeconds:     pulumi.Int(timeout),

				Containers: cloudrun.ServiceTemplateSpecContainerArray{
					&cloudrun.ServiceTemplateSpecContainerArgs{
						Image: img.ImageName,
						Ports: cloudrun.ServiceTemplateSpecContainerPortArray{
							&cloudrun.ServiceTemplateSpecContainerPortArgs{
								ContainerPort: pulumi.Int(8080),
							},
						},
						Envs: envs,
					},
				},
			},
		},
	},
		pulumi.Provider(prov),
		pulumi.DependsOn(res),
	)
}

// setIAMAccessPolicy makes the API public; access is limited by CORS only.
func setIAMAccessPolicy(ctx *pulumi.Context, svc *cloudrun.Service, prov *gcp.Provider) error {
	gcpCfg := config.New(ctx, "gcp")
	region := gcpCfg.Require("region")

	_, err := cloudrun.NewIamMember(ctx, "allowUnauthenticated", &cloudrun.IamMemberArgs{
		Service:  svc.Name,
		Location: pulumi.String(region),
		Role:     pulumi.String("roles/run.invoker"),
		Member:   pulumi.String("allUsers"),
	},
		pulumi.Provider(prov),
	)
	return err
}

func createSecretEnvs(ctx *pulumi.Context, secrets *secret.Manager) (cloudrun.ServiceTemplateSpecContainerEnvArray, error) {
	travelCfg := config.New(ctx, "travel")
	envs := cloudrun.ServiceTemplateSpecContainerEnvArray{}

	for _, s := range apiSecrets {
		value := travelCfg.RequireSecret(s.configKey)
		name, err := secrets.Add(ctx, s.secretID, value)
		if err != nil {
			return nil, err
		}

		envs = append(envs, &cloudrun.ServiceTemplateSpecContainerEnvArgs{
			Name: pulumi.String(s.envVar),
			ValueFrom: &cloudrun.ServiceTemplateSpecContainerEnvValueFromArgs{
				SecretKeyRef: &cloudrun.ServiceTemplateSpecContainerEnvValueFromSecretKeyRefArgs{
					Name: name,
					Key:  pulumi.String("latest"),
				},
			},
		})
	}

	return envs, nil
}
