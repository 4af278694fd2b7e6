// Package shopgql mounts a graphql endpoint onto the REST router, with a
// JSON scalar for loosely shaped payloads.
package shopgql

import (
	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"
)

func AllowIntrospection() bool {
	return shopcli.CommonOpts.Env != "prod" || shopcli.CommonOpts.Console
}

type Resolver interface {
	Schema() string
}
