package config

import (
	"flag"
)

// Overrides holds settings given on the command line, keyed by flag name
type Overrides map[string]string

// BindFlags registers one flag per setting on fs. Values are collected
// into the returned Overrides and applied last by Load.
func BindFlags(fs *flag.FlagSet) Overrides {
	overrides := make(Overrides)
	for _, s := range Default().settings() {
		name := s.name
		fs.Func(name, s.usage+" (default "+s.String()+")", func(value string) error {
			// Parse into a scratch config so bad values fail at flag time
			probe := Default()
			for _, p := range probe.settings() {
				if p.name == name {
					if err := p.set(value); err != nil {
						return err
					}
				}
			}
			overrides[name] = value
			return nil
		})
	}
	return overrides
}
