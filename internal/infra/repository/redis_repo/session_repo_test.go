package redis_repo

import (
	"context"
	"testing"
	"time"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SessionRepoTestSuite struct {
	suite.Suite
	client      *redis.Client
	sessionRepo *SessionRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *SessionRepoTestSuite) SetupSuite() {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "password",
	})
	require.NoError(suite.T(), client.Ping(context.Background()).Err())

	suite.client = client
	suite.sessionRepo = NewSessionRepo(client, time.Minute)
}

// TearDownSuite 在測試套件結束後執行
func (suite *SessionRepoTestSuite) TearDownSuite() {
	suite.client.Close()
}

func (suite *SessionRepoTestSuite) TestCreateAndGet() {
	ctx := context.Background()
	token := uuid.NewString()
	actor := &model.Actor{UserID: 42, Role: model.RoleAdmin}

	require.NoError(suite.T(), suite.sessionRepo.Create(ctx, token, actor))

	got, err := suite.sessionRepo.Get(ctx, token)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), actor.UserID, got.UserID)
	require.Equal(suite.T(), actor.Role, got.Role)

	// key有帶TTL
	ttl, err := suite.client.TTL(ctx, "session:"+token).Result()
	require.NoError(suite.T(), err)
	require.Greater(suite.T(), ttl, time.Duration(0))
}

func (suite *SessionRepoTestSuite) TestGetNotFound() {
	_, err := suite.sessionRepo.Get(context.Background(), uuid.NewString())
	require.ErrorIs(suite.T(), err, ErrSessionNotFound)
}

func (suite *SessionRepoTestSuite) TestDelete() {
	ctx := context.Background()
	token := uuid.NewString()

	require.NoError(suite.T(), suite.sessionRepo.Create(ctx, token, &model.Actor{UserID: 1, Role: model.RoleCustomer}))
	require.NoError(suite.T(), suite.sessionRepo.Delete(ctx, token))

	_, err := suite.sessionRepo.Get(ctx, token)
	require.ErrorIs(suite.T(), err, ErrSessionNotFound)

	// 刪除不存在的session不報錯
	require.NoError(suite.T(), suite.sessionRepo.Delete(ctx, token))
}

// 滑動過期：Refresh把TTL重設回完整長度
func (suite *SessionRepoTestSuite) TestRefresh() {
	ctx := context.Background()
	token := uuid.NewString()
	key := "session:" + token

	require.NoError(suite.T(), suite.sessionRepo.Create(ctx, token, &model.Actor{UserID: 1, Role: model.RoleCustomer}))

	// 先壓短TTL再Refresh
	require.NoError(suite.T(), suite.client.PExpire(ctx, key, 500*time.Millisecond).Err())
	require.NoError(suite.T(), suite.sessionRepo.Refresh(ctx, token))

	ttl, err := suite.client.TTL(ctx, key).Result()
	require.NoError(suite.T(), err)
	require.Greater(suite.T(), ttl, 30*time.Second)

	require.ErrorIs(suite.T(), suite.sessionRepo.Refresh(ctx, uuid.NewString()), ErrSessionNotFound)
}

func TestSessionRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepoTestSuite))
}
