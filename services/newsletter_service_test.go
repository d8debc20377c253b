package services_test

import (
	"testing"

	"news-portal-api/models"

	"github.com/stretchr/testify/suite"
)

type NewsletterServiceTestSuite struct {
	suite.Suite
	env *testEnv
}

func TestNewsletterService(t *testing.T) {
	suite.Run(t, new(NewsletterServiceTestSuite))
}

func (s *NewsletterServiceTestSuite) SetupSuite() {
	s.env = newTestEnv(s.T())
}

func (s *NewsletterServiceTestSuite) SetupTest() {
	s.env.truncate(s.T())
}

func (s *NewsletterServiceTestSuite) TestCreateStaysUnpublished() {
	scoop := s.env.createUser(s.T(), "scoop", models.RoleJournalist)

	newsletter, err := s.env.newsletters.Create(scoop.ID, models.CreateNewsletterRequest{
		Title:   "Weekly digest",
		Content: "...",
	})
	s.Require().NoError(err)
	s.False(newsletter.IsPublished)
	s.Equal(scoop.ID, newsletter.CreatedByID)
}

func (s *NewsletterServiceTestSuite) TestCreateRequiresJournalist() {
	reader := s.env.createUser(s.T(), "fan", models.RoleReader)

	_, err := s.env.newsletters.Create(reader.ID, models.CreateNewsletterRequest{
		Title:   "Weekly digest",
		Content: "...",
	})
	s.ErrorAs(err, &models.ErrorPermissionDenied{})
}

func (s *NewsletterServiceTestSuite) TestCreateUnknownPublisher() {
	scoop := s.env.createUser(s.T(), "scoop", models.RoleJournalist)

	missing := uint(999)
	_, err := s.env.newsletters.Create(scoop.ID, models.CreateNewsletterRequest{
		Title:       "Weekly digest",
		Content:     "...",
		PublisherID: &missing,
	})
	s.ErrorAs(err, &models.ErrorNotFound{})
}

// Unpublished newsletters are private to the creator, with the usual editor
// override.
func (s *NewsletterServiceTestSuite) TestGetUnpublishedGate() {
	scoop := s.env.createUser(s.T(), "scoop", models.RoleJournalist)
	newsletter, err := s.env.newsletters.Create(scoop.ID, models.CreateNewsletterRequest{
		Title:   "Weekly digest",
		Content: "...",
	})
	s.Require().NoError(err)

	_, err = s.env.newsletters.Get(scoop.ID, newsletter.ID)
	s.NoError(err)

	editor := s.env.createUser(s.T(), "chief", models.RoleEditor)
	_, err = s.env.newsletters.Get(editor.ID, newsletter.ID)
	s.NoError(err)

	reader := s.env.createUser(s.T(), "fan", models.RoleReader)
	_, err = s.env.newsletters.Get(reader.ID, newsletter.ID)
	s.ErrorAs(err, &models.ErrorPermissionDenied{})
}

func (s *NewsletterServiceTestSuite) TestUpdateAndDeleteRules() {
	scoop := s.env.createUser(s.T(), "scoop", models.RoleJournalist)
	rival := s.env.createUser(s.T(), "rival", models.RoleJournalist)
	editor := s.env.createUser(s.T(), "chief", models.RoleEditor)

	newsletter, err := s.env.newsletters.Create(scoop.ID, models.CreateNewsletterRequest{
		Title:   "Weekly digest",
		Content: "...",
	})
	s.Require().NoError(err)

	_, err = s.env.newsletters.Update(rival.ID, newsletter.ID, models.UpdateNewsletterRequest{
		Title:   "Hijack",
		Content: "nope",
	})
	s.ErrorAs(err, &models.ErrorPermissionDenied{})

	updated, err := s.env.newsletters.Update(editor.ID, newsletter.ID, models.UpdateNewsletterRequest{
		Title:   "Edited digest",
		Content: "revised",
	})
	s.Require().NoError(err)
	s.Equal("Edited digest", updated.Title)

	err = s.env.newsletters.Delete(rival.ID, newsletter.ID)
	s.ErrorAs(err, &models.ErrorPermissionDenied{})

	err = s.env.newsletters.Delete(scoop.ID, newsletter.ID)
	s.Require().NoError(err)

	_, err = s.env.newsletters.Get(scoop.ID, newsletter.ID)
	s.ErrorAs(err, &models.ErrorNotFound{})
}
