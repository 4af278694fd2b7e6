package payments

import (
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"
	"github.com/urfave/cli/v2"
)

var PaymentOpts struct {
	SecretName string
}

var SecretNameFlag = shopcli.StringFlag("stripe-secret-name", "Secrets Manager secret holding the Stripe keys", &PaymentOpts.SecretName, "magicshop/stripe")

var PaymentFlags = []cli.Flag{
	SecretNameFlag,
}
