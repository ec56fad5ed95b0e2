package domain

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/wyrmsheet/backend/internal/model"
	"github.com/wyrmsheet/backend/pkg/errorx"
	"github.com/wyrmsheet/backend/pkg/testutil"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func dispatchContext(rawURL string) context.Context {
	return xcontext.WithHTTPRequest(testutil.MockContext(), httptest.NewRequest("GET", rawURL, nil))
}

func Test_dispatchDomain_AbilityScoreMod(t *testing.T) {
	domain := NewDispatchDomain()
	ctx := dispatchContext("/api/AbilityScores/ability_score_mod?ability_score=18")

	resp, err := domain.Call(ctx, &model.DispatchRequest{
		Model:  "AbilityScores",
		Method: "ability_score_mod",
	})
	require.NoError(t, err)

	// The saving throw is chained with the default proficiency.
	require.Equal(t, model.DispatchResponse{
		"ability_score_mod": 4,
		"abs_saving_throw":  4,
	}, *resp)
}

func Test_dispatchDomain_AbsSavingThrow(t *testing.T) {
	domain := NewDispatchDomain()
	ctx := dispatchContext("/api/AbilityScores/abs_saving_throw?ability_score=14&proficient=true")

	resp, err := domain.Call(ctx, &model.DispatchRequest{
		Model:  "AbilityScores",
		Method: "abs_saving_throw",
	})
	require.NoError(t, err)
	require.Equal(t, model.DispatchResponse{"abs_saving_throw": 4}, *resp)
}

func Test_dispatchDomain_AbsSavingThrow_ProficientString(t *testing.T) {
	domain := NewDispatchDomain()

	// The literal strings "false" and "true" are parsed into genuine bools
	// before they reach the calculator.
	ctx := dispatchContext("/api/AbilityScores/abs_saving_throw?ability_score=14&proficient=false")
	resp, err := domain.Call(ctx, &model.DispatchRequest{
		Model:  "AbilityScores",
		Method: "abs_saving_throw",
	})
	require.NoError(t, err)
	require.Equal(t, model.DispatchResponse{"abs_saving_throw": 2}, *resp)

	ctx = dispatchContext("/api/AbilityScores/abs_saving_throw?ability_score=14&proficient=banana")
	_, err = domain.Call(ctx, &model.DispatchRequest{
		Model:  "AbilityScores",
		Method: "abs_saving_throw",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_dispatchDomain_UnknownModel(t *testing.T) {
	domain := NewDispatchDomain()
	ctx := dispatchContext("/api/IDontExist/ability_score_mod?ability_score=0")

	_, err := domain.Call(ctx, &model.DispatchRequest{
		Model:  "IDontExist",
		Method: "ability_score_mod",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_dispatchDomain_UnknownMethod(t *testing.T) {
	domain := NewDispatchDomain()
	ctx := dispatchContext("/api/AbilityScores/i_dont_exist?ability_score=0")

	_, err := domain.Call(ctx, &model.DispatchRequest{
		Model:  "AbilityScores",
		Method: "i_dont_exist",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_dispatchDomain_BadArguments(t *testing.T) {
	domain := NewDispatchDomain()

	testcases := []struct {
		name string
		url  string
	}{
		{name: "unknown argument", url: "/api/AbilityScores/ability_score_mod?i_dont_exist=0"},
		{name: "empty value", url: "/api/AbilityScores/ability_score_mod?ability_score="},
		{name: "non numeric value", url: "/api/AbilityScores/ability_score_mod?ability_score=high"},
		{name: "missing argument", url: "/api/AbilityScores/ability_score_mod"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.Call(dispatchContext(tc.url), &model.DispatchRequest{
				Model:  "AbilityScores",
				Method: "ability_score_mod",
			})
			var errx errorx.Error
			require.ErrorAs(t, err, &errx)
			require.Equal(t, errorx.BadRequest, errx.Code)
		})
	}
}
