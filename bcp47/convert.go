package bcp47

import (
	"github.com/ansel1/merry/v2"
)

var ErrNotFound = merry.Sentinel("no code registered for language triple")

// Converter maps a (language, region, script) triple to an external code.
// Lookup fails with ErrNotFound; Get is the optional-value flavor.
type Converter interface {
	Lookup(language, region, script string) (string, error)
	Get(language, region, script string) (string, bool)
}

// StrictConverter matches the exact triple only.
type StrictConverter struct {
	table map[Triple]string
}

// BestFitConverter relaxes region and script, never the language. Probe
// order: (l,r,s), (l,-,s), (l,r,-), (l,-,-); the first hit wins.
type BestFitConverter struct {
	table map[Triple]string
}

func NewStrictConverter(table map[Triple]string) StrictConverter {
	return StrictConverter{table: cloneTable(table)}
}

func NewBestFitConverter(table map[Triple]string) BestFitConverter {
	return BestFitConverter{table: cloneTable(table)}
}

func cloneTable(table map[Triple]string) map[Triple]string {
	out := make(map[Triple]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

func (c StrictConverter) Lookup(language, region, script string) (string, error) {
	code, ok := c.Get(language, region, script)
	if !ok {
		return "", merry.Wrap(ErrNotFound,
			merry.AppendMessagef("(%s, %s, %s)", language, region, script))
	}
	return code, nil
}

func (c StrictConverter) Get(language, region, script string) (string, bool) {
	code, ok := c.table[Triple{Language: language, Region: region, Script: script}]
	return code, ok
}

func (c BestFitConverter) Lookup(language, region, script string) (string, error) {
	code, ok := c.Get(language, region, script)
	if !ok {
		return "", merry.Wrap(ErrNotFound,
			merry.AppendMessagef("(%s, %s, %s) after dropping region and script", language, region, script))
	}
	return code, nil
}

func (c BestFitConverter) Get(language, region, script string) (string, bool) {
	probes := []Triple{
		{Language: language, Region: region, Script: script},
		{Language: language, Script: script},
		{Language: language, Region: region},
		{Language: language},
	}
	for _, probe := range probes {
		if code, ok := c.table[probe]; ok {
			return code, true
		}
	}
	return "", false
}
