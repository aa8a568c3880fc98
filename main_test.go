package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// reorderArgs tests
// ---------------------------------------------------------------------------

func TestReorderArgs_NoArgs(t *testing.T) {
	flags, positional := reorderArgs(nil)
	assert.Nil(t, flags)
	assert.Nil(t, positional)
}

func TestReorderArgs_PositionalBeforeFlags(t *testing.T) {
	flags, positional := reorderArgs([]string{"cars", "-format", "json"})
	assert.Equal(t, []string{"-format", "json"}, flags)
	assert.Equal(t, []string{"cars"}, positional)
}

func TestReorderArgs_PositionalBetweenFlags(t *testing.T) {
	flags, positional := reorderArgs([]string{"-light", "cars", "-log-level", "debug", "benefits"})
	assert.Equal(t, []string{"-light", "-log-level", "debug"}, flags)
	assert.Equal(t, []string{"cars", "benefits"}, positional)
}

func TestReorderArgs_ValueFlagWithEquals(t *testing.T) {
	flags, positional := reorderArgs([]string{"-format=json", "ride"})
	assert.Equal(t, []string{"-format=json"}, flags)
	assert.Equal(t, []string{"ride"}, positional)
}

func TestReorderArgs_DoubleHyphenValueFlag(t *testing.T) {
	flags, positional := reorderArgs([]string{"--vehicles", "car,bicycle", "--light"})
	assert.Equal(t, []string{"--vehicles", "car,bicycle", "--light"}, flags)
	assert.Nil(t, positional)
}

func TestReorderArgs_BooleanFlagDoesNotConsumeNextArg(t *testing.T) {
	flags, positional := reorderArgs([]string{"-list", "cars"})
	assert.Equal(t, []string{"-list"}, flags)
	assert.Equal(t, []string{"cars"}, positional)
}

func TestReorderArgs_ValueFlagAtEnd(t *testing.T) {
	// flag.Parse reports the missing value.
	flags, positional := reorderArgs([]string{"-diagram"})
	assert.Equal(t, []string{"-diagram"}, flags)
	assert.Nil(t, positional)
}

// ---------------------------------------------------------------------------
// run tests
// ---------------------------------------------------------------------------

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("TRIPKIT_LOG_LEVEL", "error")
	t.Setenv("TRIPKIT_FORMAT", "text")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRun_SingleScenario(t *testing.T) {
	code, out, _ := runCLI(t, "bicycles-light")
	require.Equal(t, 0, code)
	assert.Equal(t, []string{"Bicycle{size=10} cleanBicycle", "Bicycle{size=12} cleanBicycle"}, lines(out))
}

func TestRun_AllScenarios(t *testing.T) {
	code, out, _ := runCLI(t)
	require.Equal(t, 0, code)
	// cars 10 + bicycles 10 + light 2 + checklist 8 + ride 8 + benefits 4
	assert.Len(t, lines(out), 42)
}

func TestRun_JSONFormatAfterPositional(t *testing.T) {
	code, out, _ := runCLI(t, "benefits", "-format", "json")
	require.Equal(t, 0, code)
	got := lines(out)
	require.Len(t, got, 4)
	assert.JSONEq(t, `{"subject":"Gold gold user","action":"get gold pointer","source":"pointer"}`, got[0])
}

func TestRun_Vehicles(t *testing.T) {
	code, out, _ := runCLI(t, "-vehicles", "car:3,bicycle:4", "-light")
	require.Equal(t, 0, code)
	assert.Equal(t, []string{"Car{size=3} cleanBicycle", "Bicycle{size=4} cleanBicycle"}, lines(out))
}

func TestRun_List(t *testing.T) {
	code, out, _ := runCLI(t, "-list")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "bicycles-light")
	assert.Contains(t, out, "benefits")
}

func TestRun_Diagram(t *testing.T) {
	code, out, _ := runCLI(t, "-diagram", "internal/membership", "-max-methods", "0")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "classDiagram")
	assert.Contains(t, out, "membership_GoldMember --|> membership_Member")
	assert.Contains(t, out, "%% double dispatch: Member.GetBenefit(Benefit) -> GoldMember, VipMember")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown scenario", []string{"boats"}, "unknown scenario"},
		{"bad vehicle", []string{"-vehicles", "plane"}, "unknown vehicle kind"},
		{"bad format", []string{"-format", "xml"}, "unknown format"},
		{"bad log level", []string{"-log-level", "loud"}, "Invalid log level"},
		{"unknown flag", []string{"-port", "80"}, "flag provided but not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tt.wantErr)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, errOut := runCLI(t, "-help")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "-vehicles")
}

func TestRun_InvalidEnvironment(t *testing.T) {
	t.Setenv("TRIPKIT_LOG_LEVEL", "error")
	t.Setenv("TRIPKIT_FORMAT", "xml")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{name: "help still works", args: []string{"-help"}, wantCode: 0, wantErr: "-vehicles"},
		{name: "list still works", args: []string{"-list"}, wantCode: 0, wantOut: "benefits"},
		{name: "scenario reports env", args: []string{"cars"}, wantCode: 1, wantErr: "invalid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stdout.String(), tt.wantOut)
			assert.Contains(t, stderr.String(), tt.wantErr)
		})
	}
}
