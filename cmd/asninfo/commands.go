package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/KilimcininKorOglu/asntypes/internal/ber"
	"github.com/KilimcininKorOglu/asntypes/internal/schema"
	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

var (
	errMissingArg = errors.New("missing argument")
	errViolations = errors.New("schema violations")
)

// lintResult is the JSON form of one linted module.
type lintResult struct {
	Module string   `json:"module,omitempty"`
	Path   string   `json:"path,omitempty"`
	Types  int      `json:"types"`
	Errors []string `json:"errors,omitempty"`
}

// lint loads, builds and validates schemas. Without arguments it uses the
// configured schema paths.
func (a *app) lint(args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = a.cfg.Schema.Paths
	}
	if len(paths) == 0 {
		return errMissingArg
	}

	log := a.log.Named("lint")
	schemas, loadErr := schema.LoadSchemas(paths...)

	var results []lintResult
	failed := loadErr != nil
	for _, err := range multierr.Errors(loadErr) {
		log.Warn("schema rejected", "error", err)
		results = append(results, lintResult{Errors: []string{err.Error()}})
	}

	registry := schema.NewRegistry()
	opts := a.cfg.Schema.ValidateOptions()
	for _, s := range schemas {
		log.Debug("schema built", "module", s.Module, "types", s.Len())

		err := multierr.Append(schema.Validate(s, opts), registry.Register(s))
		res := lintResult{Module: s.Module, Types: s.Len()}
		for _, e := range multierr.Errors(err) {
			res.Errors = append(res.Errors, e.Error())
		}
		if len(res.Errors) > 0 {
			failed = true
			log.Warn("schema invalid", "module", s.Module, "violations", len(res.Errors))
		}
		results = append(results, res)
	}

	if a.format == "json" {
		if err := a.writeJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			switch {
			case r.Module == "":
				for _, e := range r.Errors {
					fmt.Fprintf(a.stdout, "FAIL %s\n", e)
				}
			case len(r.Errors) == 0:
				fmt.Fprintf(a.stdout, "ok   %s (%d types)\n", r.Module, r.Types)
			default:
				fmt.Fprintf(a.stdout, "FAIL %s (%d types)\n", r.Module, r.Types)
				for _, e := range r.Errors {
					fmt.Fprintf(a.stdout, "     %s\n", e)
				}
			}
		}
	}

	if failed {
		return errViolations
	}
	return nil
}

// describe prints the metadata of every type of a schema, or of the named
// type only.
func (a *app) describe(args []string) error {
	if len(args) == 0 {
		return errMissingArg
	}

	s, err := schema.LoadSchema(args[0])
	if err != nil {
		return err
	}
	a.log.Named("describe").Debug("schema built", "module", s.Module, "types", s.Len())

	list := s.Types()
	if len(args) > 1 {
		list = list[:0]
		for _, name := range args[1:] {
			t := s.GetType(name)
			if t == nil {
				return fmt.Errorf("%w: %s.%s", schema.ErrUnknownType, s.Module, name)
			}
			list = append(list, t)
		}
	}

	infos := make([]typeInfo, 0, len(list))
	for _, t := range list {
		info, err := a.describeType(t)
		if err != nil {
			return err
		}
		infos = append(infos, info)
	}

	if a.format == "json" {
		return a.writeJSON(infos)
	}
	for i, info := range infos {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		info.writeText(a.stdout)
	}
	return nil
}

// tagInfo is one row of the universal tag table.
type tagInfo struct {
	Number     uint32 `json:"number"`
	Name       string `json:"name"`
	Tag        string `json:"tag"`
	Identifier string `json:"identifier"`
}

// tags prints every universal tag with its primitive BER identifier octet.
func (a *app) tags() error {
	var rows []tagInfo
	for _, t := range types.UniversalTags() {
		id, err := a.identifier(t, false)
		if err != nil {
			return err
		}
		rows = append(rows, tagInfo{Number: t.Number, Name: t.Name(), Tag: t.String(), Identifier: id})
	}

	if a.format == "json" {
		return a.writeJSON(rows)
	}
	for _, r := range rows {
		fmt.Fprintf(a.stdout, "%2d  %-16s  %-20s %s\n", r.Number, r.Tag, r.Name, r.Identifier)
	}
	return nil
}

// identifier returns the BER identifier octets of t in hex.
func (a *app) identifier(t types.Tag, constructed bool) (string, error) {
	enc := ber.NewBEREncoderWithOptions(0, a.cfg.Codec.Options())
	if err := enc.WriteTag(t, constructed); err != nil {
		return "", err
	}
	var b strings.Builder
	for i, octet := range enc.Bytes() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", octet)
	}
	return b.String(), nil
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
