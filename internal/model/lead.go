package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is lead pipeline stage
type Status string

const (
	// StatusNew means lead was just registered
	StatusNew Status = "New"
	// StatusContacted means lead was contacted by the assigned agent
	StatusContacted Status = "Contacted"
	// StatusQualified means lead was qualified as a real opportunity
	StatusQualified Status = "Qualified"
	// StatusProposalSent means proposal was sent to the lead
	StatusProposalSent Status = "Proposal Sent"
	// StatusClosed means lead left the pipeline
	StatusClosed Status = "Closed"
)

// Source is channel the lead came from
type Source string

const (
	// SourceWebsite means lead came via website form
	SourceWebsite Source = "Website"
	// SourceReferral means lead was referred by existing customer
	SourceReferral Source = "Referral"
	// SourceColdCall means lead was acquired by cold call
	SourceColdCall Source = "Cold Call"
	// SourceAdvertisement means lead came from advertisement
	SourceAdvertisement Source = "Advertisement"
	// SourceEmail means lead came via email campaign
	SourceEmail Source = "Email"
	// SourceOther means any other channel
	SourceOther Source = "Other"
)

// Priority specifies how important lead is
type Priority string

const (
	// PriorityHigh means high lead priority
	PriorityHigh Priority = "High"
	// PriorityMedium means medium lead priority
	PriorityMedium Priority = "Medium"
	// PriorityLow means low lead priority
	PriorityLow Priority = "Low"
)

// Lead is lead model entity; Agent is populated only by reads which
// resolve the salesAgent reference
type Lead struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Source       Source             `json:"source" bson:"source"`
	SalesAgentID primitive.ObjectID `json:"-" bson:"salesAgent"`
	Status       Status             `json:"status" bson:"status"`
	Tags         []string           `json:"tags" bson:"tags"`
	TimeToClose  int                `json:"timeToClose" bson:"timeToClose"`
	Priority     Priority           `json:"priority" bson:"priority"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	ClosedAt     *time.Time         `json:"closedAt,omitempty" bson:"closedAt,omitempty"`
	Agent        *AgentRef          `json:"salesAgent,omitempty" bson:"agent,omitempty"`
}

// LeadPatch carries partial lead update; nil fields are left unchanged
type LeadPatch struct {
	Name        *string   `json:"name"`
	Source      *Source   `json:"source"`
	SalesAgent  *string   `json:"salesAgent"`
	Status      *Status   `json:"status"`
	Tags        []string  `json:"tags"`
	TimeToClose *int      `json:"timeToClose"`
	Priority    *Priority `json:"priority"`
}

// MergePatch applies provided patch fields on top of current lead
// values; the salesAgent reference is handled by the caller since it
// requires an existence check
func (l Lead) MergePatch(patch LeadPatch) Lead {
	if patch.Name != nil {
		l.Name = *patch.Name
	}

	if patch.Source != nil {
		l.Source = *patch.Source
	}

	if patch.Status != nil {
		l.Status = *patch.Status
	}

	if patch.Tags != nil {
		l.Tags = patch.Tags
	}

	if patch.TimeToClose != nil {
		l.TimeToClose = *patch.TimeToClose
	}

	if patch.Priority != nil {
		l.Priority = *patch.Priority
	}

	return l
}

// LeadFilter is conjunction of optional list-leads constraints
type LeadFilter struct {
	SalesAgentID *primitive.ObjectID
	Status       Status
	Source       Source
	Tags         []string
}
