package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/inboxd/internal/api"
	"github.com/mcoot/inboxd/internal/factory"
	"github.com/mcoot/inboxd/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.Require().NoError(s.app.LoadTestCatalog(context.Background()))

	router := api.NewRouter(api.RouterConfig{
		Logger:          testutil.NopLogger(),
		PlayerService:   s.app.PlayerService,
		ItemService:     s.app.ItemService,
		DeliveryService: s.app.DeliveryService,
	})
	s.server = httptest.NewServer(router)
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

func (s *CLISuite) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", s.server.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) TestHealth() {
	out, err := s.run("health")
	s.Require().NoError(err)
	s.Contains(out, "Status: ok")
}

func (s *CLISuite) TestPlayerLifecycle() {
	out, err := s.run("player", "create", "Alice")
	s.Require().NoError(err)
	s.Contains(out, "Player: Alice (offline)")

	out, err = s.run("player", "login", "Alice")
	s.Require().NoError(err)
	s.Contains(out, "(online)")

	out, err = s.run("player", "list")
	s.Require().NoError(err)
	s.Contains(out, "Alice [online]")

	out, err = s.run("player", "logout", "Alice")
	s.Require().NoError(err)
	s.Contains(out, "Logged out Alice")

	out, err = s.run("player", "get", "Alice")
	s.Require().NoError(err)
	s.Contains(out, "(offline)")
}

func (s *CLISuite) TestDeliverOfflineJSON() {
	_, err := s.run("player", "create", "Bob")
	s.Require().NoError(err)

	out, err := s.run("-o", "json", "deliver", "Bob", "2148")
	s.Require().NoError(err)

	var d Delivery
	s.Require().NoError(json.Unmarshal([]byte(out), &d))
	s.Equal("delivered", d.Status)
	s.Equal("Bob", d.Recipient)
	s.False(d.Online)
	s.True(d.Saved)
	s.Equal(2148, d.Item.TypeID)

	out, err = s.run("player", "inbox", "Bob")
	s.Require().NoError(err)
	s.Contains(out, "Inbox of Bob (1)")
	s.Contains(out, "gold coin")
}

func (s *CLISuite) TestDeliverErrors() {
	_, err := s.run("deliver", "Nobody", "2148")
	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(404, apiErr.Status)
	s.Equal("RECIPIENT_NOT_FOUND", apiErr.Code)

	_, err = s.run("player", "create", "Carol")
	s.Require().NoError(err)
	_, err = s.run("deliver", "Carol", "7")
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("ITEM_INVALID", apiErr.Code)

	_, err = s.run("deliver", "Carol", "70000")
	s.Error(err)
}

func (s *CLISuite) TestItems() {
	out, err := s.run("items", "add", "3031", "gold ingot", "--max-count", "10")
	s.Require().NoError(err)
	s.Contains(out, "Item type 3031: gold ingot (max 10)")

	out, err = s.run("items", "list")
	s.Require().NoError(err)
	s.Contains(out, "gold ingot")
	s.Contains(out, "magic sword")
}

func (s *CLISuite) TestRejectsUnknownOutput() {
	_, err := s.run("-o", "yaml", "health")
	s.Error(err)
}

func TestPlayerPathEscapes(t *testing.T) {
	assert.Equal(t, "/api/v1/players/a%20b/inbox", PlayerPath("a b", "inbox"))
	assert.Equal(t, "/api/v1/players/x", PlayerPath("x"))
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Status: 404, Code: "PLAYER_NOT_FOUND", Message: "player not found"}
	require.EqualError(t, err, "player not found (PLAYER_NOT_FOUND)")
}
