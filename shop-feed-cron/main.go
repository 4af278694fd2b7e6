package main

import (
	"context"
	"log"
	"os"

	"github.com/magicshop-live/magicshop-backend/catalog/livecachedao"
	"github.com/magicshop-live/magicshop-backend/feed"
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"
	shopcron "github.com/magicshop-live/magicshop-backend/shop-cron"
	shopddb "github.com/magicshop-live/magicshop-backend/shop-ddb"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/ivs"
	"github.com/urfave/cli/v2"
)

var service = shopcli.NewService("shop-feed-cron")

func main() {
	flags := append([]cli.Flag{}, shopcli.CommonFlags...)
	flags = append(flags, shopddb.DDBFlags...)

	app := shopcli.App(service, action, flags...)
	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func action(_ *cli.Context) error {
	s := session.Must(session.NewSession(aws.NewConfig().
		WithRegion(shopcli.CommonOpts.Region)))

	api, err := shopddb.DynamoDBAPI(s)
	if err != nil {
		return err
	}

	metrics := shopcli.NewMetrics(service, cloudwatch.New(s))
	feedService := feed.New(livecachedao.Build(api, shopcli.CommonOpts.Env), ivs.New(s), metrics)

	handler := shopcron.NewHandler(service, func(ctx context.Context) error {
		return feedService.Refresh(ctx)
	})
	return handler.Start()
}
