package domain

import (
	"context"
	"strconv"

	"github.com/wyrmsheet/backend/internal/domain/statcalc"
	"github.com/wyrmsheet/backend/internal/model"
	"github.com/wyrmsheet/backend/pkg/errorx"
	"github.com/wyrmsheet/backend/pkg/reflectutil"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

type DispatchDomain interface {
	Call(ctx context.Context, req *model.DispatchRequest) (*model.DispatchResponse, error)
}

type paramKind int

const (
	paramInt paramKind = iota
	paramBool
)

type param struct {
	name     string
	kind     paramKind
	required bool
	fallback any
}

// computation is one callable entry of the dispatch registry. Arguments
// arrive as strings from the query and are parsed against params before fn
// runs, so fn itself is total.
type computation struct {
	params  []param
	fn      func(args map[string]any) any
	chained []string
}

type dispatchDomain struct {
	registry map[string]map[string]computation
}

// NewDispatchDomain builds the closed registry of named computations. The
// wire name of a method is the snake_case form of its Go-style name, and
// lookups of anything outside the registry fail as not found.
func NewDispatchDomain() DispatchDomain {
	abilityScore := param{name: "ability_score", kind: paramInt, required: true}
	proficient := param{name: "proficient", kind: paramBool, fallback: false}

	methods := map[string]computation{}

	methods[reflectutil.ToSnakeCase("AbilityScoreMod")] = computation{
		params: []param{abilityScore},
		fn: func(args map[string]any) any {
			return statcalc.AbilityScoreMod(args["ability_score"].(int))
		},
		chained: []string{reflectutil.ToSnakeCase("AbsSavingThrow")},
	}

	methods[reflectutil.ToSnakeCase("AbsSavingThrow")] = computation{
		params: []param{abilityScore, proficient},
		fn: func(args map[string]any) any {
			return statcalc.SavingThrow(args["ability_score"].(int), args["proficient"].(bool))
		},
	}

	return &dispatchDomain{
		registry: map[string]map[string]computation{
			"AbilityScores": methods,
		},
	}
}

func (d *dispatchDomain) Call(
	ctx context.Context, req *model.DispatchRequest,
) (*model.DispatchResponse, error) {
	methods, ok := d.registry[req.Model]
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Not found model %s", req.Model)
	}

	method, ok := methods[req.Method]
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Not found method %s", req.Method)
	}

	query := map[string]string{}
	for name, values := range xcontext.HTTPRequest(ctx).URL.Query() {
		if len(values) > 0 {
			query[name] = values[0]
		}
	}

	args, err := parseArgs(method.params, query, true)
	if err != nil {
		return nil, err
	}

	resp := model.DispatchResponse{req.Method: method.fn(args)}

	// Chained computations reuse the primary arguments and fall back to
	// defaults. Their failures never fail the request, the key is omitted.
	for _, name := range method.chained {
		chained, ok := methods[name]
		if !ok {
			continue
		}

		chainedArgs, err := parseArgs(chained.params, query, false)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Omit chained method %s: %v", name, err)
			continue
		}

		resp[name] = chained.fn(chainedArgs)
	}

	return &resp, nil
}

// parseArgs validates the query against the declared parameters. In strict
// mode an unknown argument name is an error; chained calls run non-strict
// because they reuse the primary method's query.
func parseArgs(params []param, query map[string]string, strict bool) (map[string]any, error) {
	if strict {
		for name := range query {
			known := false
			for _, p := range params {
				if p.name == name {
					known = true
					break
				}
			}

			if !known {
				return nil, errorx.New(errorx.BadRequest, "Unexpected argument %s", name)
			}
		}
	}

	args := map[string]any{}
	for _, p := range params {
		raw, ok := query[p.name]
		if !ok {
			if p.required {
				return nil, errorx.New(errorx.BadRequest, "Missing argument %s", p.name)
			}

			args[p.name] = p.fallback
			continue
		}

		switch p.kind {
		case paramInt:
			value, err := strconv.Atoi(raw)
			if err != nil {
				return nil, errorx.New(errorx.BadRequest, "Invalid value of argument %s", p.name)
			}
			args[p.name] = value

		case paramBool:
			value, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, errorx.New(errorx.BadRequest, "Invalid value of argument %s", p.name)
			}
			args[p.name] = value
		}
	}

	return args, nil
}
