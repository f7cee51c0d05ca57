package demo

import (
	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/go/errmodel/chain"
)

// DefaultKey is the id looked up when none is given.
const DefaultKey uint32 = 41

// Strategy names the error representation a demo uses.
type Strategy string

const (
	// StrategyChain reports failures as chain errors with context.
	StrategyChain Strategy = "chain"

	// StrategyMarker reports failures as the zero-cost marker.LookupFailure.
	StrategyMarker Strategy = "marker"

	// StrategyIDNum reports failures as matchable idnum errors.
	StrategyIDNum Strategy = "idnum"
)

// Env holds the collaborators a demo runs against.
type Env struct {
	FS    billy.Filesystem
	Table IDTable
	Key   uint32
}

// Demo is a named call site.
type Demo struct {
	Name        string
	Strategy    Strategy
	Description string
	Run         func(Env) error
}

// Demos returns every demo in display order.
func Demos() []Demo {
	return []Demo{
		{
			Name:        "open-file-1",
			Strategy:    StrategyChain,
			Description: "read and parse " + NumberFile,
			Run: func(env Env) error {
				_, err := OpenFile1(env.FS)
				return err
			},
		},
		{
			Name:        "open-file-2",
			Strategy:    StrategyChain,
			Description: "open " + LogFile + " with context",
			Run: func(env Env) error {
				return OpenFile2(env.FS)
			},
		},
		{
			Name:        "access-map-1",
			Strategy:    StrategyChain,
			Description: "look up and validate an id",
			Run: func(env Env) error {
				_, err := AccessMap1(env.Table, env.Key)
				return err
			},
		},
		{
			Name:        "access-map-2",
			Strategy:    StrategyMarker,
			Description: "look up an id without allocating",
			Run: func(env Env) error {
				_, lf := AccessMap2(env.Table, env.Key)
				return lf.Err()
			},
		},
		{
			Name:        "access-map-3",
			Strategy:    StrategyIDNum,
			Description: "look up and validate an id with matchable errors",
			Run: func(env Env) error {
				_, err := AccessMap3(env.Table, env.Key)
				return err
			},
		},
	}
}

// Find returns the demo called name.
func Find(name string) (Demo, error) {
	for _, d := range Demos() {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, chain.Errorf("unknown demo %q", name)
}
