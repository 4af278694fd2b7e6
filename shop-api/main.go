package main

import (
	"log"
	"os"

	"github.com/magicshop-live/magicshop-backend/catalog"
	"github.com/magicshop-live/magicshop-backend/catalog/livecachedao"
	"github.com/magicshop-live/magicshop-backend/catalog/sellerdao"
	"github.com/magicshop-live/magicshop-backend/catalog/streamdao"
	"github.com/magicshop-live/magicshop-backend/chat"
	"github.com/magicshop-live/magicshop-backend/feed"
	"github.com/magicshop-live/magicshop-backend/payments"
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"
	shopddb "github.com/magicshop-live/magicshop-backend/shop-ddb"
	shoprest "github.com/magicshop-live/magicshop-backend/shop-rest"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/ivs"
	"github.com/aws/aws-sdk-go/service/ivschat"
	"github.com/urfave/cli/v2"
)

var service = shopcli.NewService("shop-api")

func main() {
	flags := append([]cli.Flag{}, shopcli.CommonFlags...)
	flags = append(flags, shopcli.PortFlag(3000))
	flags = append(flags, shopddb.DDBFlags...)
	flags = append(flags, payments.PaymentFlags...)

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

	paymentService, err := payments.NewService(s, payments.PaymentOpts.SecretName, metrics)
	if err != nil {
		return err
	}

	env := shopcli.CommonOpts.Env
	server := &Server{
		Payments: paymentService,
		Catalog:  catalog.New(sellerdao.Build(api, env), streamdao.Build(api, env), metrics),
		Chat:     chat.New(ivschat.New(s), metrics),
		Feed:     feed.New(livecachedao.Build(api, env), ivs.New(s), metrics),
	}

	routes, err := server.Routes(service)
	if err != nil {
		return err
	}
	return shoprest.Webserver(service, routes)
}
