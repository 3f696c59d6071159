package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/review-dashboard/infra/cloudrun"
	"github.com/GregMSThompson/review-dashboard/infra/docker"
	"github.com/GregMSThompson/review-dashboard/infra/firestore"
	"github.com/GregMSThompson/review-dashboard/infra/identity"
	"github.com/GregMSThompson/review-dashboard/infra/provider"
	"github.com/GregMSThompson/review-dashboard/infra/vertex"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// firebase sign-in for dashboard users
		ident, err := identity.SetupIdentity(ctx, prov)
		if err != nil {
			return err
		}

		// saved filter presets
		db, err := firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// dashboard insight summaries
		ai, err := vertex.SetupVertex(ctx, prov)
		if err != nil {
			return err
		}

		repo, err := docker.CreateCloudrunRepo(ctx, prov)
		if err != nil {
			return err
		}

		apiSA, err := cloudrun.SetupCloudRun(ctx, prov, ident, db, ai, repo)
		if err != nil {
			return err
		}

		ctx.Export("apiServiceAccount", apiSA.Email)
		return nil
	})
}
