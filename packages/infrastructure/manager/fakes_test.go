package manager

import "warehouse/packages/infrastructure/DB/dbtest"

type store = dbtest.Store

var (
	alice = dbtest.Alice
	bob   = dbtest.Bob
	dave  = dbtest.Dave
	tape  = dbtest.Tape
	drill = dbtest.Drill
	date  = dbtest.Date
)

func newStore() *store {
	return dbtest.New()
}
