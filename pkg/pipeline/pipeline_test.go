package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/northwood-systems/govkernel/pkg/action"
	"github.com/northwood-systems/govkernel/pkg/aggregator"
	"github.com/northwood-systems/govkernel/pkg/foundation"
	"github.com/northwood-systems/govkernel/pkg/trust"
	"github.com/northwood-systems/govkernel/pkg/workflow"
)

func TestRunIsPureAndDeterministic(t *testing.T) {
	in := Input{
		Request:    action.Request{ActorKind: foundation.ActorHuman, Action: action.Write, Zone: trust.External},
		Workflow:   workflow.Context{State: workflow.Validated, Actor: foundation.ActorHuman},
		Transition: workflow.Complete,
	}
	out1 := Run(in)
	out2 := Run(in)
	assert.Equal(t, out1, out2)
}

func TestRunHumanAllowWins(t *testing.T) {
	in := Input{
		Request:    action.Request{ActorKind: foundation.ActorHuman, Action: action.Write, Zone: trust.External},
		Workflow:   workflow.Context{State: workflow.Validated, Actor: foundation.ActorHuman},
		Transition: workflow.Complete,
	}
	out := Run(in)
	assert.Equal(t, action.Allow, out.Validation.Result)
	assert.True(t, out.WorkflowNext.Allowed)
	assert.Equal(t, aggregator.Allow, out.FinalDecision)
}

func TestRunSystemGovernanceDeleteEscalates(t *testing.T) {
	in := Input{
		Request:    action.Request{ActorKind: foundation.ActorSystem, Action: action.Delete, Zone: trust.Governance},
		Workflow:   workflow.Context{State: workflow.Init, Actor: foundation.ActorSystem},
		Transition: workflow.Validate,
	}
	out := Run(in)
	assert.Equal(t, action.Escalate, out.Validation.Result)
	assert.Equal(t, aggregator.Escalate, out.FinalDecision)
}

func TestRunSystemExternalWriteDenies(t *testing.T) {
	in := Input{
		Request:    action.Request{ActorKind: foundation.ActorSystem, Action: action.Write, Zone: trust.External},
		Workflow:   workflow.Context{State: workflow.Init, Actor: foundation.ActorSystem},
		Transition: workflow.Validate,
	}
	out := Run(in)
	assert.Equal(t, action.Deny, out.Validation.Result)
	assert.Equal(t, aggregator.Deny, out.FinalDecision)
}

func TestRunDerivesActorZoneFromActorKind(t *testing.T) {
	in := Input{
		Request:    action.Request{ActorKind: foundation.ActorSystem, Action: action.Read, Zone: trust.System},
		Workflow:   workflow.Context{State: workflow.Init, Actor: foundation.ActorSystem},
		Transition: workflow.Validate,
	}
	out := Run(in)
	assert.True(t, out.Crossing.Allowed, "SYSTEM actor crossing into SYSTEM zone is same-zone")
}
