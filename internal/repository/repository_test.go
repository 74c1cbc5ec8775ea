package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/taskmanager-api/internal/config"
	"github.com/yukikurage/taskmanager-api/internal/database"
	"github.com/yukikurage/taskmanager-api/internal/models"
	"github.com/yukikurage/taskmanager-api/internal/repository"
	"gorm.io/gorm"
)

// RepositoryTestSuite runs both repositories against in-memory SQLite
type RepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	db    *gorm.DB
	users repository.UserRepository
	tasks repository.TaskRepository
}

func (s *RepositoryTestSuite) SetupTest() {
	var err error
	s.ctx = context.Background()

	s.db, err = database.Connect(&config.Config{
		DBDriver:   config.DriverSQLite,
		DBPath:     ":memory:",
		DBLogLevel: "silent",
	})
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(s.db, false))

	s.users = repository.NewUserRepository(s.db)
	s.tasks = repository.NewTaskRepository(s.db)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.Require().NoError(database.Close(s.db))
}

func (s *RepositoryTestSuite) createUser(username string) *models.User {
	user := &models.User{Username: username, Firstname: "First", Lastname: "Last", Slug: username}
	s.Require().NoError(s.users.Create(s.ctx, user))
	return user
}

func (s *RepositoryTestSuite) createTask(title string, userID uint64) *models.Task {
	task := &models.Task{Title: title, Content: "content", Slug: title, UserID: userID}
	s.Require().NoError(s.tasks.Create(s.ctx, task))
	return task
}

func (s *RepositoryTestSuite) countTasks(userID uint64) int64 {
	var n int64
	s.Require().NoError(s.db.Model(&models.Task{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

func (s *RepositoryTestSuite) TestUserCreate_AssignsID() {
	user := s.createUser("alice")
	s.NotZero(user.ID)

	found, err := s.users.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("alice", found.Username)
}

func (s *RepositoryTestSuite) TestUserCreate_DuplicateUsername() {
	s.createUser("alice")

	err := s.users.Create(s.ctx, &models.User{Username: "alice", Firstname: "a", Lastname: "b", Slug: "alice-2"})
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *RepositoryTestSuite) TestUserCreate_DuplicateSlug() {
	s.createUser("alice")

	err := s.users.Create(s.ctx, &models.User{Username: "Alice", Firstname: "a", Lastname: "b", Slug: "alice"})
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *RepositoryTestSuite) TestUserFindByID_NotFound() {
	_, err := s.users.FindByID(s.ctx, 42)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestUserList_OrderedByID() {
	a := s.createUser("a")
	b := s.createUser("b")

	users, err := s.users.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal(a.ID, users[0].ID)
	s.Equal(b.ID, users[1].ID)
}

func (s *RepositoryTestSuite) TestUserUpdateProfile() {
	user := s.createUser("alice")
	age := 30

	s.Require().NoError(s.users.UpdateProfile(s.ctx, user.ID, repository.UserProfile{
		Firstname: "Alicia",
		Lastname:  "Smith",
		Age:       &age,
	}))

	found, err := s.users.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("Alicia", found.Firstname)
	s.Equal("Smith", found.Lastname)
	s.Require().NotNil(found.Age)
	s.Equal(30, *found.Age)
	s.Equal("alice", found.Username)
	s.Equal("alice", found.Slug)

	// age can be cleared
	s.Require().NoError(s.users.UpdateProfile(s.ctx, user.ID, repository.UserProfile{Firstname: "Alicia", Lastname: "Smith"}))
	found, err = s.users.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Nil(found.Age)
}

func (s *RepositoryTestSuite) TestUserUpdateProfile_NotFound() {
	err := s.users.UpdateProfile(s.ctx, 99, repository.UserProfile{Firstname: "a", Lastname: "b"})
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestDeleteWithTasks_RemovesUserAndTasks() {
	user := s.createUser("alice")
	other := s.createUser("bob")
	s.createTask("one", user.ID)
	s.createTask("two", user.ID)
	kept := s.createTask("three", other.ID)

	purged, err := s.users.DeleteWithTasks(s.ctx, user.ID, false)
	s.Require().NoError(err)
	s.EqualValues(2, purged)

	_, err = s.users.FindByID(s.ctx, user.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
	s.Zero(s.countTasks(user.ID))

	_, err = s.tasks.FindByID(s.ctx, kept.ID)
	s.NoError(err)
}

func (s *RepositoryTestSuite) TestDeleteWithTasks_StrictKeepsOrphans() {
	// tasks referencing a user id that has no row
	s.createTask("orphan-1", 77)
	s.createTask("orphan-2", 77)

	purged, err := s.users.DeleteWithTasks(s.ctx, 77, false)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
	s.Zero(purged)
	s.EqualValues(2, s.countTasks(77))
}

func (s *RepositoryTestSuite) TestDeleteWithTasks_LegacyPurgesOrphans() {
	s.createTask("orphan-1", 77)
	s.createTask("orphan-2", 77)

	purged, err := s.users.DeleteWithTasks(s.ctx, 77, true)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
	s.EqualValues(2, purged)
	s.Zero(s.countTasks(77))
}

func (s *RepositoryTestSuite) TestUserListTasks() {
	user := s.createUser("alice")
	first := s.createTask("one", user.ID)
	second := s.createTask("two", user.ID)
	s.createTask("elsewhere", user.ID+1)

	tasks, err := s.users.ListTasks(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(tasks, 2)
	s.Equal(first.ID, tasks[0].ID)
	s.Equal(second.ID, tasks[1].ID)
}

func (s *RepositoryTestSuite) TestTaskUpdateContent_KeepsSlugAndOwner() {
	user := s.createUser("alice")
	task := s.createTask("original", user.ID)
	s.Require().NoError(s.db.Model(task).Update("completed", true).Error)

	s.Require().NoError(s.tasks.UpdateContent(s.ctx, task.ID, repository.TaskContent{
		Title:     "renamed",
		Content:   "new content",
		Priority:  5,
		Completed: false,
	}))

	found, err := s.tasks.FindByID(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal("renamed", found.Title)
	s.Equal("new content", found.Content)
	s.Equal(5, found.Priority)
	s.False(found.Completed)
	s.Equal("original", found.Slug)
	s.Equal(user.ID, found.UserID)
}

func (s *RepositoryTestSuite) TestTaskUpdateContent_NotFound() {
	err := s.tasks.UpdateContent(s.ctx, 5, repository.TaskContent{Title: "t", Content: "c"})
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestTaskDelete() {
	task := s.createTask("bye", 1)

	s.Require().NoError(s.tasks.Delete(s.ctx, task.ID))
	s.ErrorIs(s.tasks.Delete(s.ctx, task.ID), gorm.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestTaskList() {
	s.createTask("a", 1)
	s.createTask("b", 2)

	tasks, err := s.tasks.List(s.ctx)
	s.Require().NoError(err)
	s.Len(tasks, 2)
}

func (s *RepositoryTestSuite) TestTaskUserExists() {
	user := s.createUser("alice")

	ok, err := s.tasks.UserExists(s.ctx, user.ID)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.tasks.UserExists(s.ctx, user.ID+100)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RepositoryTestSuite) TestTaskSlug_NotUniqueByDefault() {
	s.createTask("same", 1)
	s.createTask("same", 1)
}

func (s *RepositoryTestSuite) TestTaskSlug_UniqueWhenEnabled() {
	s.Require().NoError(database.EnsureTaskSlugIndex(s.db, true))
	s.createTask("same", 1)

	err := s.tasks.Create(s.ctx, &models.Task{Title: "Same", Content: "c", Slug: "same", UserID: 1})
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
