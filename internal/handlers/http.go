package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	errs "github.com/anvaya/crm/internal/errors"
	"github.com/anvaya/crm/internal/model"
	"github.com/anvaya/crm/internal/service"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type newLead struct {
	Name        string         `json:"name" validate:"required"`
	Source      model.Source   `json:"source" validate:"required,oneof=Website Referral 'Cold Call' Advertisement Email Other"`
	SalesAgent  string         `json:"salesAgent" validate:"required"`
	Status      model.Status   `json:"status" validate:"omitempty,oneof=New Contacted Qualified 'Proposal Sent' Closed"`
	Tags        []string       `json:"tags"`
	TimeToClose int            `json:"timeToClose" validate:"required,gt=0"`
	Priority    model.Priority `json:"priority" validate:"omitempty,oneof=High Medium Low"`
}

type updateLead struct {
	Name        *string         `json:"name" validate:"omitempty,min=1"`
	Source      *model.Source   `json:"source" validate:"omitempty,oneof=Website Referral 'Cold Call' Advertisement Email Other"`
	SalesAgent  *string         `json:"salesAgent"`
	Status      *model.Status   `json:"status" validate:"omitempty,oneof=New Contacted Qualified 'Proposal Sent' Closed"`
	Tags        []string        `json:"tags"`
	TimeToClose *int            `json:"timeToClose" validate:"omitempty,gt=0"`
	Priority    *model.Priority `json:"priority" validate:"omitempty,oneof=High Medium Low"`
}

// LeadHTTPHandler is http handler for leads endpoint
type LeadHTTPHandler struct {
	leadSvc service.LeadService
}

// NewLeadHTTPHandler builds new LeadHTTPHandler
func NewLeadHTTPHandler(leadSvc service.LeadService) *LeadHTTPHandler {
	return &LeadHTTPHandler{leadSvc: leadSvc}
}

// Post creates new lead
// @Summary     New lead
// @Description Creates new lead assigned to an existing sales agent
// @Tags        leads
// @Accept      json
// @Produce     json
// @Param       newLead body     newLead true "Data for new lead"
// @Success     201     {object} model.Lead
// @Failure     400     {object} echo.HTTPError
// @Failure     404     {object} echo.HTTPError
// @Router      /leads [post]
func (h *LeadHTTPHandler) Post(c echo.Context) error {
	var nl newLead
	if err := c.Bind(&nl); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nl); err != nil {
		return err
	}

	agentID, err := primitive.ObjectIDFromHex(nl.SalesAgent)
	if err != nil {
		return errs.NewBusinessErr("salesAgent", fmt.Sprintf("Invalid Sales Agent ID format. Received '%s'.", nl.SalesAgent))
	}

	lead, err := h.leadSvc.Create(c.Request().Context(), &model.Lead{
		Name:         nl.Name,
		Source:       nl.Source,
		SalesAgentID: agentID,
		Status:       nl.Status,
		Tags:         nl.Tags,
		TimeToClose:  nl.TimeToClose,
		Priority:     nl.Priority,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, lead)
}

// GetAll gets all leads matching the query filter
// @Summary     List leads
// @Description Returns leads matching the conjunction of query filters, newest first
// @Tags        leads
// @Produce     json
// @Param       salesAgent query    string false "Sales agent id"
// @Param       status     query    string false "Lead status"
// @Param       source     query    string false "Lead source"
// @Param       tags       query    string false "Comma-separated tag names, lead matches any"
// @Success     200        {array}  model.Lead
// @Failure     400        {object} echo.HTTPError
// @Router      /leads [get]
func (h *LeadHTTPHandler) GetAll(c echo.Context) error {
	filter := model.LeadFilter{
		Status: model.Status(c.QueryParam("status")),
		Source: model.Source(c.QueryParam("source")),
	}

	if agent := c.QueryParam("salesAgent"); agent != "" {
		agentID, err := primitive.ObjectIDFromHex(agent)
		if err != nil {
			return errs.NewBusinessErr("salesAgent", fmt.Sprintf("Invalid Sales Agent ID format. Received '%s'.", agent))
		}
		filter.SalesAgentID = &agentID
	}

	if tags := c.QueryParam("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	leads, err := h.leadSvc.FindAll(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, leads)
}

// Put updates lead partially
// @Summary     Update lead
// @Description Applies provided fields on top of the existing lead
// @Tags        leads
// @Accept      json
// @Produce     json
// @Param       id         path     string     true "Lead id"
// @Param       updateLead body     updateLead true "Lead fields to update"
// @Success     200        {object} model.Lead
// @Failure     400        {object} echo.HTTPError
// @Failure     404        {object} echo.HTTPError
// @Router      /leads/{id} [put]
func (h *LeadHTTPHandler) Put(c echo.Context) error {
	id, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var ul updateLead
	if err := c.Bind(&ul); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ul); err != nil {
		return err
	}

	lead, err := h.leadSvc.Update(c.Request().Context(), id, model.LeadPatch{
		Name:        ul.Name,
		Source:      ul.Source,
		SalesAgent:  ul.SalesAgent,
		Status:      ul.Status,
		Tags:        ul.Tags,
		TimeToClose: ul.TimeToClose,
		Priority:    ul.Priority,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, lead)
}

// DeleteByID deletes lead and its comments
// @Summary     Delete lead
// @Description Deletes lead with provided id together with its comments
// @Tags        leads
// @Produce     json
// @Param       id path string true "Lead id"
// @Success     200 "Confirmation message"
// @Failure     400 {object} echo.HTTPError
// @Failure     404 {object} echo.HTTPError
// @Router      /leads/{id} [delete]
func (h *LeadHTTPHandler) DeleteByID(c echo.Context) error {
	id, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.leadSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Lead deleted successfully."})
}

type newComment struct {
	Author      string `json:"author" validate:"required"`
	CommentText string `json:"commentText" validate:"required"`
}

// CommentHTTPHandler is http handler for lead comments endpoint
type CommentHTTPHandler struct {
	commentSvc service.CommentService
}

// NewCommentHTTPHandler builds new CommentHTTPHandler
func NewCommentHTTPHandler(commentSvc service.CommentService) *CommentHTTPHandler {
	return &CommentHTTPHandler{commentSvc: commentSvc}
}

// Post adds comment to lead
// @Summary     Add comment
// @Description Adds comment authored by a sales agent to a lead
// @Tags        comments
// @Accept      json
// @Produce     json
// @Param       id         path     string     true "Lead id"
// @Param       newComment body     newComment true "Comment data"
// @Success     201        {object} model.Comment
// @Failure     400        {object} echo.HTTPError
// @Failure     404        {object} echo.HTTPError
// @Router      /leads/{id}/comments [post]
func (h *CommentHTTPHandler) Post(c echo.Context) error {
	leadID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var nc newComment
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	authorID, err := primitive.ObjectIDFromHex(nc.Author)
	if err != nil {
		return errs.NewBusinessErr("author", fmt.Sprintf("Invalid Sales Agent ID format. Received '%s'.", nc.Author))
	}

	comment, err := h.commentSvc.Add(c.Request().Context(), leadID, authorID, nc.CommentText)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetAll gets all comments of lead
// @Summary     List comments
// @Description Returns all comments of a lead, newest first
// @Tags        comments
// @Produce     json
// @Param       id path string true "Lead id"
// @Success     200 {array}  model.Comment
// @Failure     404 {object} echo.HTTPError
// @Router      /leads/{id}/comments [get]
func (h *CommentHTTPHandler) GetAll(c echo.Context) error {
	leadID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.commentSvc.FindByLeadID(c.Request().Context(), leadID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, comments)
}

type newAgent struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// AgentHTTPHandler is http handler for sales agents endpoint
type AgentHTTPHandler struct {
	agentSvc service.AgentService
}

// NewAgentHTTPHandler builds new AgentHTTPHandler
func NewAgentHTTPHandler(agentSvc service.AgentService) *AgentHTTPHandler {
	return &AgentHTTPHandler{agentSvc: agentSvc}
}

// Post creates new sales agent
// @Summary     New sales agent
// @Description Creates new sales agent with unique email
// @Tags        agents
// @Accept      json
// @Produce     json
// @Param       newAgent body     newAgent true "Data for new sales agent"
// @Success     201      {object} model.SalesAgent
// @Failure     400      {object} echo.HTTPError
// @Failure     409      {object} echo.HTTPError
// @Router      /agents [post]
func (h *AgentHTTPHandler) Post(c echo.Context) error {
	var na newAgent
	if err := c.Bind(&na); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&na); err != nil {
		return err
	}

	agent, err := h.agentSvc.Create(c.Request().Context(), &model.SalesAgent{
		Name:  na.Name,
		Email: na.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, agent)
}

// GetAll gets all sales agents
// @Summary     List sales agents
// @Description Returns all sales agents
// @Tags        agents
// @Produce     json
// @Success     200 {array} model.SalesAgent
// @Router      /agents [get]
func (h *AgentHTTPHandler) GetAll(c echo.Context) error {
	agents, err := h.agentSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agents)
}

type newTag struct {
	Name string `json:"name" validate:"required"`
}

// TagHTTPHandler is http handler for tags endpoint
type TagHTTPHandler struct {
	tagSvc service.TagService
}

// NewTagHTTPHandler builds new TagHTTPHandler
func NewTagHTTPHandler(tagSvc service.TagService) *TagHTTPHandler {
	return &TagHTTPHandler{tagSvc: tagSvc}
}

// Post creates new tag
// @Summary     New tag
// @Description Creates new tag with unique trimmed name
// @Tags        tags
// @Accept      json
// @Produce     json
// @Param       newTag body     newTag true "Data for new tag"
// @Success     201    {object} model.Tag
// @Failure     400    {object} echo.HTTPError
// @Failure     409    {object} echo.HTTPError
// @Router      /tags [post]
func (h *TagHTTPHandler) Post(c echo.Context) error {
	var nt newTag
	if err := c.Bind(&nt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nt); err != nil {
		return err
	}

	tag, err := h.tagSvc.Create(c.Request().Context(), nt.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tag)
}

// GetAll gets all tags
// @Summary     List tags
// @Description Returns all tags sorted by name for deterministic dropdowns
// @Tags        tags
// @Produce     json
// @Success     200 {array} model.Tag
// @Router      /tags [get]
func (h *TagHTTPHandler) GetAll(c echo.Context) error {
	tags, err := h.tagSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

// ReportHTTPHandler is http handler for reports endpoint
type ReportHTTPHandler struct {
	reportSvc service.ReportService
}

// NewReportHTTPHandler builds new ReportHTTPHandler
func NewReportHTTPHandler(reportSvc service.ReportService) *ReportHTTPHandler {
	return &ReportHTTPHandler{reportSvc: reportSvc}
}

// LastWeek gets leads closed within the last seven days
// @Summary     Closed last week report
// @Description Returns leads closed within the last seven days, latest first
// @Tags        reports
// @Produce     json
// @Success     200 {array} model.Lead
// @Router      /report/last-week [get]
func (h *ReportHTTPHandler) LastWeek(c echo.Context) error {
	leads, err := h.reportSvc.ClosedLastWeek(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leads)
}

// Pipeline gets pipeline breakdown by status
// @Summary     Pipeline report
// @Description Returns non-closed lead counts grouped by status
// @Tags        reports
// @Produce     json
// @Success     200 {object} model.PipelineReport
// @Router      /report/pipeline [get]
func (h *ReportHTTPHandler) Pipeline(c echo.Context) error {
	report, err := h.reportSvc.Pipeline(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// ClosedByAgent gets closed leads grouped by sales agent
// @Summary     Closed by agent report
// @Description Returns closed leads grouped by their sales agent, top performers first
// @Tags        reports
// @Produce     json
// @Success     200 {array} model.AgentClosure
// @Router      /report/closed-by-agent [get]
func (h *ReportHTTPHandler) ClosedByAgent(c echo.Context) error {
	closures, err := h.reportSvc.ClosedByAgent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, closures)
}

func pathObjectID(c echo.Context, name string) (primitive.ObjectID, error) {
	raw := c.Param(name)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errs.NewBusinessErr(name, fmt.Sprintf("Invalid %s: %s", name, raw))
	}
	return id, nil
}
