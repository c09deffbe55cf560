package model

import "time"

// StatusCount is single pipeline report breakdown row
type StatusCount struct {
	Status Status `json:"_id" bson:"_id"`
	Count  int    `json:"count" bson:"count"`
}

// PipelineReport is pipeline report over all non-closed leads
type PipelineReport struct {
	TotalLeadsInPipeline int           `json:"totalLeadsInPipeline"`
	Breakdown            []StatusCount `json:"breakdown"`
}

// ClosedLead is closed lead entry within an agent closure group
type ClosedLead struct {
	Name     string     `json:"name" bson:"name"`
	ClosedAt *time.Time `json:"closedAt" bson:"closedAt"`
}

// AgentClosure is closed-by-agent report row
type AgentClosure struct {
	SalesAgent       AgentRef     `json:"salesAgent" bson:"salesAgent"`
	ClosedLeadsCount int          `json:"closedLeadsCount" bson:"closedLeadsCount"`
	Leads            []ClosedLead `json:"leads" bson:"leads"`
}
