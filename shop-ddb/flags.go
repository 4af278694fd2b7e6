package shopddb

import (
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"
	"github.com/urfave/cli/v2"
)

var DDBOpts struct {
	DAXCluster string
}

var DAXClusterFlag = shopcli.StringFlag("dax-cluster", "The DAX cluster to connect to, if any", &DDBOpts.DAXCluster)

var DDBFlags = []cli.Flag{
	DAXClusterFlag,
}
