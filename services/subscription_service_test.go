package services_test

import (
	"testing"

	"news-portal-api/models"

	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	env *testEnv
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}

func (s *SubscriptionServiceTestSuite) SetupSuite() {
	s.env = newTestEnv(s.T())
}

func (s *SubscriptionServiceTestSuite) SetupTest() {
	s.env.truncate(s.T())
}

func (s *SubscriptionServiceTestSuite) TestSubscribeReplacesExistingSets() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	first := s.env.createPublisher(s.T(), "Daily Planet", owner)
	second := s.env.createPublisher(s.T(), "Daily Bugle", owner)
	journalist := s.env.createUser(s.T(), "scoop", models.RoleJournalist)
	reader := s.env.createUser(s.T(), "fan", models.RoleReader)

	_, err := s.env.subscriptions.Subscribe(reader.ID, models.SubscribeRequest{
		PublisherIDs:  []uint{first.ID},
		JournalistIDs: []uint{journalist.ID},
	})
	s.Require().NoError(err)

	// A second call swaps the whole state, it does not accumulate.
	resp, err := s.env.subscriptions.Subscribe(reader.ID, models.SubscribeRequest{
		PublisherIDs: []uint{second.ID},
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Publishers, 1)
	s.Equal(second.ID, resp.Publishers[0].ID)
	s.Empty(resp.Journalists)

	got, err := s.env.userRepo.GetByID(reader.ID)
	s.Require().NoError(err)
	s.Require().Len(got.SubscribedPublishers, 1)
	s.Equal(second.ID, got.SubscribedPublishers[0].ID)
	s.Empty(got.SubscribedJournalists)
}

// The subscription rows mirror the association sets after every swap.
func (s *SubscriptionServiceTestSuite) TestSubscribeKeepsRegistryRowsInSync() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", owner)
	journalist := s.env.createUser(s.T(), "scoop", models.RoleJournalist)
	reader := s.env.createUser(s.T(), "fan", models.RoleReader)

	_, err := s.env.subscriptions.Subscribe(reader.ID, models.SubscribeRequest{
		PublisherIDs:  []uint{publisher.ID},
		JournalistIDs: []uint{journalist.ID},
	})
	s.Require().NoError(err)

	rows, err := s.env.subscriptionRepo.ListForReader(reader.ID)
	s.Require().NoError(err)
	s.Len(rows, 2)

	_, err = s.env.subscriptions.Subscribe(reader.ID, models.SubscribeRequest{})
	s.Require().NoError(err)

	rows, err = s.env.subscriptionRepo.ListForReader(reader.ID)
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *SubscriptionServiceTestSuite) TestSubscribeDeniedForNonReaders() {
	journalist := s.env.createUser(s.T(), "scoop", models.RoleJournalist)
	editor := s.env.createUser(s.T(), "chief", models.RoleEditor)

	_, err := s.env.subscriptions.Subscribe(journalist.ID, models.SubscribeRequest{})
	s.ErrorAs(err, &models.ErrorPermissionDenied{})

	_, err = s.env.subscriptions.Subscribe(editor.ID, models.SubscribeRequest{})
	s.ErrorAs(err, &models.ErrorPermissionDenied{})
}

// A repeated target inside one request would create a duplicate subscription
// row, which is a conflict, not a lookup failure.
func (s *SubscriptionServiceTestSuite) TestSubscribeDuplicateTargetConflicts() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", owner)
	journalist := s.env.createUser(s.T(), "scoop", models.RoleJournalist)
	reader := s.env.createUser(s.T(), "fan", models.RoleReader)

	_, err := s.env.subscriptions.Subscribe(reader.ID, models.SubscribeRequest{
		PublisherIDs: []uint{publisher.ID, publisher.ID},
	})
	s.ErrorAs(err, &models.ErrorConflictFailed{})

	_, err = s.env.subscriptions.Subscribe(reader.ID, models.SubscribeRequest{
		JournalistIDs: []uint{journalist.ID, journalist.ID},
	})
	s.ErrorAs(err, &models.ErrorConflictFailed{})

	rows, err := s.env.subscriptionRepo.ListForReader(reader.ID)
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *SubscriptionServiceTestSuite) TestSubscribeUnknownPublisher() {
	reader := s.env.createUser(s.T(), "fan", models.RoleReader)

	_, err := s.env.subscriptions.Subscribe(reader.ID, models.SubscribeRequest{
		PublisherIDs: []uint{999},
	})
	s.ErrorAs(err, &models.ErrorNotFound{})
}

// Only journalists can be followed directly. Readers and editors are not
// valid targets.
func (s *SubscriptionServiceTestSuite) TestSubscribeRejectsNonJournalistTargets() {
	reader := s.env.createUser(s.T(), "fan", models.RoleReader)
	other := s.env.createUser(s.T(), "other", models.RoleReader)
	editor := s.env.createUser(s.T(), "chief", models.RoleEditor)

	_, err := s.env.subscriptions.Subscribe(reader.ID, models.SubscribeRequest{
		JournalistIDs: []uint{other.ID},
	})
	s.ErrorAs(err, &models.ErrorValidationFailed{})

	_, err = s.env.subscriptions.Subscribe(reader.ID, models.SubscribeRequest{
		JournalistIDs: []uint{editor.ID},
	})
	s.ErrorAs(err, &models.ErrorValidationFailed{})
}

func (s *SubscriptionServiceTestSuite) TestCurrent() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", owner)
	reader := s.env.createUser(s.T(), "fan", models.RoleReader)

	_, err := s.env.subscriptions.Subscribe(reader.ID, models.SubscribeRequest{
		PublisherIDs: []uint{publisher.ID},
	})
	s.Require().NoError(err)

	resp, err := s.env.subscriptions.Current(reader.ID)
	s.Require().NoError(err)
	s.Require().Len(resp.Publishers, 1)
	s.Equal(publisher.ID, resp.Publishers[0].ID)

	_, err = s.env.subscriptions.Current(owner.ID)
	s.ErrorAs(err, &models.ErrorPermissionDenied{})
}
