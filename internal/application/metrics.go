package application

import "expvar"

// Exposed on /api/debug/vars.
var (
	usersRegistered = expvar.NewInt("users_registered")
	logins          = expvar.NewInt("logins")
	cartMutations   = expvar.NewInt("cart_mutations")
)
