package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunScenariosCommandExitsZeroOnSuccess(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"govkernel", "run"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "[PASS]")
	assert.NotContains(t, stdout.String(), "[FAIL]")
}

func TestRunDefaultsToScenariosWithNoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"govkernel"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
}

func TestRunVersionCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"govkernel", "version"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "govkernel")
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"govkernel", "bogus"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "unknown command")
}

// TestScenariosMatchSpecLiteralExpectations pins each of the eight
// literal scenarios spec.md §8 names to its required verdict, so a
// regression in any layer's decision table fails here with the scenario
// name attached rather than just a generic assertion failure.
func TestScenariosMatchSpecLiteralExpectations(t *testing.T) {
	results := RunScenarios()
	assert.Len(t, results, 8)

	byPrefix := make(map[string]ScenarioResult, len(results))
	for _, r := range results {
		byPrefix[strings.Fields(r.Name)[0]] = r
	}

	for _, prefix := range []string{"S1", "S2", "S3", "S4", "S5", "S6", "S7", "S8"} {
		r, ok := byPrefix[prefix]
		if !assert.True(t, ok, "missing scenario %s", prefix) {
			continue
		}
		assert.True(t, r.OK, "scenario %s: got=%s want=%s (%s)", r.Name, r.Got, r.Want, r.Detail)
	}
}
