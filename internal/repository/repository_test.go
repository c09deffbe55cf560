package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/anvaya/crm/internal/model"
	"github.com/labstack/gommon/log"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectionTimeout = 3 * time.Second
)

const (
	mongoContainerName = "mongo-test-crm"
	mongoPort          = "27017"
	mongoTestUser      = "test"
	mongoTestPassword  = "test"
)

var mongoClient *mongo.Client

func TestMain(m *testing.M) {
	// build docker pool
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("failed to create pool - %v", err)
	}

	if err := dockerPool.Client.Ping(); err != nil {
		log.Fatalf("failed to connect to docker - %v", err)
	}

	// start mongo
	mongodb, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       mongoContainerName,
		Repository: "mongo",
		Tag:        "latest",
		Env: []string{
			fmt.Sprintf("MONGO_INITDB_ROOT_USERNAME=%s", mongoTestUser),
			fmt.Sprintf("MONGO_INITDB_ROOT_PASSWORD=%s", mongoTestPassword),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"27017/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", mongoPort)}},
		},
	})
	if err != nil {
		log.Fatalf("failed to start mongodb - %v", err)
	}

	// connect to mongo
	mongoURI := fmt.Sprintf("mongodb://%s:%s@localhost:%s/?maxPoolSize=100", mongoTestUser, mongoTestPassword, mongoPort)
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var err error
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if err != nil {
			return err
		}
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.Fatalf("failed to establish connection to mongodb - %v", err)
	}

	// start tests
	code := m.Run()

	// purge mongodb
	if err := dockerPool.Purge(mongodb); err != nil {
		log.Fatalf("failed to purge mongodb - %v", err)
	}

	os.Exit(code)
}

func uniqueIndex(ctx context.Context, t *testing.T, db *mongo.Database, collection, field string) {
	t.Helper()
	_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	require.NoError(t, err, "failed to create unique index on %s.%s", collection, field)
}

func TestAgentRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := mongoClient.Database("crm-agents-test")
	uniqueIndex(ctx, t, db, agentsCollection, "email")

	agentRps := NewMongoAgentRepository(db)

	agent := &model.SalesAgent{
		Name:      "Jane Cooper",
		Email:     "jane.cooper@anvaya.io",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	t.Log("create agent")
	{
		id, err := agentRps.Create(ctx, agent)
		require.NoError(t, err, "failed to create agent")
		require.False(t, id.IsZero(), "assigned identifier must not be zero")
		agent.ID = id
	}

	t.Log("find agent by id")
	{
		dbAgent, err := agentRps.FindByID(ctx, agent.ID)
		require.NoError(t, err, "failed to read agent by id")
		require.NotNil(t, dbAgent, "agent was created recently but not found by id")
		require.Equal(t, agent.Email, dbAgent.Email, "emails must match")
	}

	t.Log("find agent by email")
	{
		dbAgent, err := agentRps.FindByEmail(ctx, agent.Email)
		require.NoError(t, err, "failed to read agent by email")
		require.NotNil(t, dbAgent, "agent was created recently but not found by email")
	}

	t.Log("find missing agent")
	{
		dbAgent, err := agentRps.FindByID(ctx, primitive.NewObjectID())
		require.NoError(t, err, "missing agent must not raise error")
		require.Nil(t, dbAgent, "missing agent must yield nil")
	}

	t.Log("create agent duplicate")
	{
		_, err := agentRps.Create(ctx, &model.SalesAgent{Name: "Other", Email: agent.Email})
		require.ErrorIs(t, err, ErrDuplicateKey, "duplicate email must raise duplicate key error")
	}
}

func TestLeadRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	db := mongoClient.Database("crm-leads-test")

	agentRps := NewMongoAgentRepository(db)
	leadRps := NewMongoLeadRepository(db)

	agentID, err := agentRps.Create(ctx, &model.SalesAgent{Name: "Jane Cooper", Email: "jane.cooper@anvaya.io"})
	require.NoError(t, err, "failed to create reference agent")

	first := &model.Lead{
		Name:         "Acme Corp website revamp",
		Source:       model.SourceReferral,
		SalesAgentID: agentID,
		Status:       model.StatusNew,
		Tags:         []string{"Urgent", "VIP"},
		TimeToClose:  30,
		Priority:     model.PriorityHigh,
		CreatedAt:    time.Now().UTC().Add(-time.Hour),
	}

	second := &model.Lead{
		Name:         "Globex onboarding",
		Source:       model.SourceWebsite,
		SalesAgentID: agentID,
		Status:       model.StatusContacted,
		Tags:         []string{"Renewal"},
		TimeToClose:  60,
		Priority:     model.PriorityMedium,
		CreatedAt:    time.Now().UTC(),
	}

	t.Log("create leads")
	{
		id, err := leadRps.Create(ctx, first)
		require.NoError(t, err, "failed to create lead")
		first.ID = id

		id, err = leadRps.Create(ctx, second)
		require.NoError(t, err, "failed to create lead")
		second.ID = id
	}

	t.Log("find all leads without filter, newest first")
	{
		leads, err := leadRps.FindAll(ctx, model.LeadFilter{})
		require.NoError(t, err, "failed to read leads")
		require.Len(t, leads, 2, "both leads must be returned")
		require.Equal(t, second.ID, leads[0].ID, "newest lead must come first")
		require.NotNil(t, leads[0].Agent, "agent reference must be resolved")
		require.Equal(t, "jane.cooper@anvaya.io", leads[0].Agent.Email, "resolved agent email must match")
	}

	t.Log("filter leads by any-of tags")
	{
		leads, err := leadRps.FindAll(ctx, model.LeadFilter{Tags: []string{"VIP", "Other"}})
		require.NoError(t, err, "failed to read leads")
		require.Len(t, leads, 1, "only the tagged lead must match")
		require.Equal(t, first.ID, leads[0].ID, "tagged lead must be returned")

		leads, err = leadRps.FindAll(ctx, model.LeadFilter{Tags: []string{"Other"}})
		require.NoError(t, err, "failed to read leads")
		require.Empty(t, leads, "no lead carries the tag")
	}

	t.Log("filter leads by status and agent")
	{
		leads, err := leadRps.FindAll(ctx, model.LeadFilter{Status: model.StatusContacted, SalesAgentID: &agentID})
		require.NoError(t, err, "failed to read leads")
		require.Len(t, leads, 1, "single contacted lead must match")
		require.Equal(t, second.ID, leads[0].ID, "contacted lead must be returned")
	}

	t.Log("update lead")
	{
		first.Status = model.StatusQualified
		first.Priority = model.PriorityLow
		err := leadRps.Update(ctx, first)
		require.NoError(t, err, "failed to update lead")

		dbLead, err := leadRps.FindByID(ctx, first.ID)
		require.NoError(t, err, "failed to read lead by id")
		require.NotNil(t, dbLead, "updated lead must be present")
		require.Equal(t, model.StatusQualified, dbLead.Status, "status must be updated")
		require.Equal(t, []string{"Urgent", "VIP"}, dbLead.Tags, "tags must be untouched")
	}

	t.Log("delete lead")
	{
		deleted, err := leadRps.DeleteByID(ctx, first.ID)
		require.NoError(t, err, "failed to delete lead")
		require.True(t, deleted, "lead must be reported deleted")

		deleted, err = leadRps.DeleteByID(ctx, first.ID)
		require.NoError(t, err, "repeated delete must not raise error")
		require.False(t, deleted, "missing lead must not be reported deleted")
	}
}

func TestLeadReportsRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	db := mongoClient.Database("crm-reports-test")

	agentRps := NewMongoAgentRepository(db)
	leadRps := NewMongoLeadRepository(db)

	now := time.Now().UTC().Truncate(time.Millisecond)
	boundary := now.AddDate(0, 0, -7)
	tooOld := now.AddDate(0, 0, -8)

	janeID, err := agentRps.Create(ctx, &model.SalesAgent{Name: "Jane Cooper", Email: "jane.cooper@anvaya.io"})
	require.NoError(t, err, "failed to create reference agent")

	henryID, err := agentRps.Create(ctx, &model.SalesAgent{Name: "Henry Ford", Email: "henry.ford@anvaya.io"})
	require.NoError(t, err, "failed to create reference agent")

	leads := []*model.Lead{
		{Name: "open-1", Source: model.SourceWebsite, SalesAgentID: janeID, Status: model.StatusNew, TimeToClose: 10, Priority: model.PriorityMedium, CreatedAt: now},
		{Name: "open-2", Source: model.SourceWebsite, SalesAgentID: janeID, Status: model.StatusNew, TimeToClose: 10, Priority: model.PriorityMedium, CreatedAt: now},
		{Name: "open-3", Source: model.SourceEmail, SalesAgentID: henryID, Status: model.StatusContacted, TimeToClose: 10, Priority: model.PriorityMedium, CreatedAt: now},
		{Name: "closed-boundary", Source: model.SourceReferral, SalesAgentID: janeID, Status: model.StatusClosed, TimeToClose: 10, Priority: model.PriorityMedium, CreatedAt: now, ClosedAt: &boundary},
		{Name: "closed-old", Source: model.SourceReferral, SalesAgentID: janeID, Status: model.StatusClosed, TimeToClose: 10, Priority: model.PriorityMedium, CreatedAt: now, ClosedAt: &tooOld},
		{Name: "closed-henry", Source: model.SourceColdCall, SalesAgentID: henryID, Status: model.StatusClosed, TimeToClose: 10, Priority: model.PriorityMedium, CreatedAt: now, ClosedAt: &now},
	}

	t.Logf("create %d leads", len(leads))
	{
		for _, l := range leads {
			_, err := leadRps.Create(ctx, l)
			require.NoError(t, err, "failed to create lead %s", l.Name)
		}
	}

	t.Log("closed since boundary is inclusive")
	{
		closed, err := leadRps.FindClosedSince(ctx, boundary)
		require.NoError(t, err, "failed to read closed leads")
		require.Len(t, closed, 2, "boundary lead must be included, older one excluded")
		require.Equal(t, "closed-henry", closed[0].Name, "latest closed lead must come first")
		require.Equal(t, "closed-boundary", closed[1].Name, "boundary lead must come last")
	}

	t.Log("count by status excludes closed leads")
	{
		counts, err := leadRps.CountByStatus(ctx)
		require.NoError(t, err, "failed to count by status")
		require.Len(t, counts, 2, "two non-closed statuses present")
		require.Equal(t, model.StatusNew, counts[0].Status, "biggest group must come first")
		require.Equal(t, 2, counts[0].Count, "two new leads expected")
		require.Equal(t, model.StatusContacted, counts[1].Status, "contacted group must come second")
		require.Equal(t, 1, counts[1].Count, "one contacted lead expected")
	}

	t.Log("closed by agent groups and joins")
	{
		closures, err := leadRps.ClosedByAgent(ctx)
		require.NoError(t, err, "failed to group closed leads")
		require.Len(t, closures, 2, "both agents closed leads")
		require.Equal(t, 2, closures[0].ClosedLeadsCount, "top performer must come first")
		require.Equal(t, "jane.cooper@anvaya.io", closures[0].SalesAgent.Email, "joined agent must carry email")
		require.Len(t, closures[0].Leads, 2, "closed leads must be collected")
	}

	t.Log("closed lead of a vanished agent is dropped from the join")
	{
		orphanAgent := primitive.NewObjectID()
		_, err := leadRps.Create(ctx, &model.Lead{
			Name: "closed-orphan", Source: model.SourceOther, SalesAgentID: orphanAgent,
			Status: model.StatusClosed, TimeToClose: 10, Priority: model.PriorityMedium,
			CreatedAt: now, ClosedAt: &now,
		})
		require.NoError(t, err, "failed to create orphan lead")

		closures, err := leadRps.ClosedByAgent(ctx)
		require.NoError(t, err, "failed to group closed leads")
		require.Len(t, closures, 2, "orphan group must be dropped by the inner join")
	}
}

func TestCommentRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := mongoClient.Database("crm-comments-test")

	agentRps := NewMongoAgentRepository(db)
	commentRps := NewMongoCommentRepository(db)

	authorID, err := agentRps.Create(ctx, &model.SalesAgent{Name: "Jane Cooper", Email: "jane.cooper@anvaya.io"})
	require.NoError(t, err, "failed to create reference agent")

	leadID := primitive.NewObjectID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	comments := []*model.Comment{
		{LeadID: leadID, AuthorID: authorID, CommentText: "first touch", CreatedAt: now.Add(-time.Minute)},
		{LeadID: leadID, AuthorID: authorID, CommentText: "follow up scheduled", CreatedAt: now},
	}

	t.Log("create comments")
	{
		for _, c := range comments {
			_, err := commentRps.Create(ctx, c)
			require.NoError(t, err, "failed to create comment")
		}
	}

	t.Log("find comments by lead, newest first, author resolved")
	{
		dbComments, err := commentRps.FindByLeadID(ctx, leadID)
		require.NoError(t, err, "failed to read comments")
		require.Len(t, dbComments, 2, "both comments must be returned")
		require.Equal(t, "follow up scheduled", dbComments[0].CommentText, "newest comment must come first")
		require.NotNil(t, dbComments[0].Author, "author must be resolved")
		require.Equal(t, "jane.cooper@anvaya.io", dbComments[0].Author.Email, "resolved author email must match")
	}

	t.Log("delete comments by lead")
	{
		deleted, err := commentRps.DeleteByLeadID(ctx, leadID)
		require.NoError(t, err, "failed to delete comments")
		require.EqualValues(t, 2, deleted, "both comments must be deleted")

		dbComments, err := commentRps.FindByLeadID(ctx, leadID)
		require.NoError(t, err, "failed to read comments")
		require.Empty(t, dbComments, "no comments must remain")
	}
}

func TestTagRps(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := mongoClient.Database("crm-tags-test")
	uniqueIndex(ctx, t, db, tagsCollection, "name")

	tagRps := NewMongoTagRepository(db)

	names := []string{"Urgent", "Follow-up", "VIP"}

	t.Log("create tags")
	{
		for _, name := range names {
			_, err := tagRps.Create(ctx, &model.Tag{Name: name, CreatedAt: time.Now().UTC()})
			require.NoError(t, err, "failed to create tag %s", name)
		}
	}

	t.Log("create tag duplicate")
	{
		_, err := tagRps.Create(ctx, &model.Tag{Name: "Urgent", CreatedAt: time.Now().UTC()})
		require.True(t, errors.Is(err, ErrDuplicateKey), "duplicate name must raise duplicate key error")
	}

	t.Log("find tag by name")
	{
		tag, err := tagRps.FindByName(ctx, "VIP")
		require.NoError(t, err, "failed to read tag by name")
		require.NotNil(t, tag, "tag was created recently but not found by name")

		tag, err = tagRps.FindByName(ctx, "vip")
		require.NoError(t, err, "lookup is case-sensitive, no error expected")
		require.Nil(t, tag, "lookup must be case-sensitive")
	}

	t.Log("find all tags sorted by name")
	{
		tags, err := tagRps.FindAll(ctx)
		require.NoError(t, err, "failed to read tags")
		require.Len(t, tags, 3, "all tags must be returned")
		require.Equal(t, "Follow-up", tags[0].Name, "tags must be sorted by name ascending")
		require.Equal(t, "Urgent", tags[1].Name, "tags must be sorted by name ascending")
		require.Equal(t, "VIP", tags[2].Name, "tags must be sorted by name ascending")
	}
}
