package services_test

import (
	"testing"

	"news-portal-api/models"

	"github.com/stretchr/testify/suite"
)

type PublisherServiceTestSuite struct {
	suite.Suite
	env *testEnv
}

func TestPublisherService(t *testing.T) {
	suite.Run(t, new(PublisherServiceTestSuite))
}

func (s *PublisherServiceTestSuite) SetupSuite() {
	s.env = newTestEnv(s.T())
}

func (s *PublisherServiceTestSuite) SetupTest() {
	s.env.truncate(s.T())
}

func (s *PublisherServiceTestSuite) TestRegisterRequiresEditor() {
	journalist := s.env.createUser(s.T(), "scoop", models.RoleJournalist)

	_, err := s.env.publishers.Register(journalist.ID, models.RegisterPublisherRequest{Name: "Daily Planet"})
	s.ErrorAs(err, &models.ErrorPermissionDenied{})
}

func (s *PublisherServiceTestSuite) TestRegisterAddsOwnerToEditors() {
	editor := s.env.createUser(s.T(), "chief", models.RoleEditor)

	publisher, err := s.env.publishers.Register(editor.ID, models.RegisterPublisherRequest{
		Name:        "Daily Planet",
		Description: "Metropolis daily",
	})
	s.Require().NoError(err)

	s.Require().NotNil(publisher.OwnerID)
	s.Equal(editor.ID, *publisher.OwnerID)
	s.Require().Len(publisher.Editors, 1)
	s.Equal(editor.ID, publisher.Editors[0].ID)
}

func (s *PublisherServiceTestSuite) TestJoinByRole() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", owner)

	editor := s.env.createUser(s.T(), "deputy", models.RoleEditor)
	journalist := s.env.createUser(s.T(), "scoop", models.RoleJournalist)
	reader := s.env.createUser(s.T(), "fan", models.RoleReader)

	got, err := s.env.publishers.Join(editor.ID, publisher.ID)
	s.Require().NoError(err)
	s.Len(got.Editors, 2)

	got, err = s.env.publishers.Join(journalist.ID, publisher.ID)
	s.Require().NoError(err)
	s.Len(got.Journalists, 1)

	_, err = s.env.publishers.Join(reader.ID, publisher.ID)
	s.ErrorAs(err, &models.ErrorPermissionDenied{})
}

func (s *PublisherServiceTestSuite) TestJoinIsIdempotent() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", owner)
	journalist := s.env.createUser(s.T(), "scoop", models.RoleJournalist)

	_, err := s.env.publishers.Join(journalist.ID, publisher.ID)
	s.Require().NoError(err)
	got, err := s.env.publishers.Join(journalist.ID, publisher.ID)
	s.Require().NoError(err)
	s.Len(got.Journalists, 1)
}

func (s *PublisherServiceTestSuite) TestJoinUnknownPublisher() {
	editor := s.env.createUser(s.T(), "chief", models.RoleEditor)

	_, err := s.env.publishers.Join(editor.ID, 999)
	s.ErrorAs(err, &models.ErrorNotFound{})
}

func (s *PublisherServiceTestSuite) TestAddStaff() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", owner)
	s.env.createUser(s.T(), "scoop", models.RoleJournalist)

	err := s.env.publishers.AddStaff(owner.ID, publisher.ID, models.StaffRequest{
		Username: "scoop",
		Kind:     models.StaffJournalist,
	})
	s.Require().NoError(err)

	got, err := s.env.publishers.Get(publisher.ID)
	s.Require().NoError(err)
	s.Len(got.Journalists, 1)
}

// Any editor of the house may manage staff, not just the owner.
func (s *PublisherServiceTestSuite) TestAddStaffByMemberEditor() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", owner)

	deputy := s.env.createUser(s.T(), "deputy", models.RoleEditor)
	_, err := s.env.publishers.Join(deputy.ID, publisher.ID)
	s.Require().NoError(err)

	s.env.createUser(s.T(), "scoop", models.RoleJournalist)
	err = s.env.publishers.AddStaff(deputy.ID, publisher.ID, models.StaffRequest{
		Username: "scoop",
		Kind:     models.StaffJournalist,
	})
	s.NoError(err)
}

func (s *PublisherServiceTestSuite) TestAddStaffDeniedForOutsider() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", owner)

	outsider := s.env.createUser(s.T(), "rival", models.RoleEditor)
	s.env.createUser(s.T(), "scoop", models.RoleJournalist)

	err := s.env.publishers.AddStaff(outsider.ID, publisher.ID, models.StaffRequest{
		Username: "scoop",
		Kind:     models.StaffJournalist,
	})
	s.ErrorAs(err, &models.ErrorPermissionDenied{})
}

// The target must exist with the matching role, otherwise NotFound.
func (s *PublisherServiceTestSuite) TestAddStaffUnknownOrWrongRole() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", owner)
	s.env.createUser(s.T(), "fan", models.RoleReader)

	err := s.env.publishers.AddStaff(owner.ID, publisher.ID, models.StaffRequest{
		Username: "ghost",
		Kind:     models.StaffJournalist,
	})
	s.ErrorAs(err, &models.ErrorNotFound{})

	err = s.env.publishers.AddStaff(owner.ID, publisher.ID, models.StaffRequest{
		Username: "fan",
		Kind:     models.StaffJournalist,
	})
	s.ErrorAs(err, &models.ErrorNotFound{})
}

func (s *PublisherServiceTestSuite) TestRemoveStaff() {
	owner := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", owner)
	journalist := s.env.createUser(s.T(), "scoop", models.RoleJournalist)

	_, err := s.env.publishers.Join(journalist.ID, publisher.ID)
	s.Require().NoError(err)

	err = s.env.publishers.RemoveStaff(owner.ID, publisher.ID, models.StaffRequest{
		Username: "scoop",
		Kind:     models.StaffJournalist,
	})
	s.Require().NoError(err)

	got, err := s.env.publishers.Get(publisher.ID)
	s.Require().NoError(err)
	s.Empty(got.Journalists)
}

func (s *PublisherServiceTestSuite) TestManagedByIsDistinct() {
	chief := s.env.createUser(s.T(), "chief", models.RoleEditor)
	other := s.env.createUser(s.T(), "other", models.RoleEditor)

	owned := s.env.createPublisher(s.T(), "Daily Planet", chief)
	foreign := s.env.createPublisher(s.T(), "Daily Bugle", other)

	_, err := s.env.publishers.Join(chief.ID, foreign.ID)
	s.Require().NoError(err)

	managed, err := s.env.publishers.ManagedBy(chief.ID)
	s.Require().NoError(err)
	s.Len(managed, 2)

	ids := []uint{managed[0].ID, managed[1].ID}
	s.Contains(ids, owned.ID)
	s.Contains(ids, foreign.ID)
}

func (s *PublisherServiceTestSuite) TestIsMember() {
	chief := s.env.createUser(s.T(), "chief", models.RoleEditor)
	publisher := s.env.createPublisher(s.T(), "Daily Planet", chief)
	journalist := s.env.createUser(s.T(), "scoop", models.RoleJournalist)
	outsider := s.env.createUser(s.T(), "rival", models.RoleJournalist)

	_, err := s.env.publishers.Join(journalist.ID, publisher.ID)
	s.Require().NoError(err)

	member, err := s.env.publishers.IsMember(publisher.ID, chief.ID)
	s.Require().NoError(err)
	s.True(member)

	member, err = s.env.publishers.IsMember(publisher.ID, journalist.ID)
	s.Require().NoError(err)
	s.True(member)

	member, err = s.env.publishers.IsMember(publisher.ID, outsider.ID)
	s.Require().NoError(err)
	s.False(member)
}
