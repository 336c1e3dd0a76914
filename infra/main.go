package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/travel-backend/infra/cloudrun"
	"github.com/GregMSThompson/travel-backend/infra/docker"
	"github.com/GregMSThompson/travel-backend/infra/provider"
	"github.com/GregMSThompson/travel-backend/infra/vertex"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// gemini on vertex is used when no api key is configured
		vtx, err := vertex.SetupVertex(ctx, prov)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx)
		if err != nil {
			return err
		}

		url, err := cloudrun.SetupCloudRun(ctx, prov, repo, vtx)
		if err != nil {
			return err
		}

		ctx.Export("apiUrl", url)
		return nil
	})
}
