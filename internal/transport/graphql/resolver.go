// Package graphql exposes the application's operations as a GraphQL API
// mounted inside the Gin router.
package graphql

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	authentity "readit_backend/internal/feature/auth/domain/entity"
	authusecase "readit_backend/internal/feature/auth/usecase"
	postentity "readit_backend/internal/feature/post/domain/entity"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（transport）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、セッションを確立します。
	Register(ctx context.Context, email, username, password string) (*authusecase.Result, error)
	// Login はユーザーを認証し、成功時にセッションを確立します。
	Login(ctx context.Context, usernameOrEmail, password string) (*authusecase.Result, error)
	// Logout はセッションを破棄し、成功したかどうかを返します。
	Logout(ctx context.Context, token string) bool
	// CurrentUser はセッショントークンからログイン中のユーザーを解決します。
	CurrentUser(ctx context.Context, token string) (*authentity.User, error)
	// ForgotPassword はパスワードリセットメールの送信を依頼します。
	ForgotPassword(ctx context.Context, email string) (bool, error)
	// ChangePassword はリセットトークンを消費して新しいパスワードを設定します。
	ChangePassword(ctx context.Context, token, newPassword string) (*authusecase.Result, error)
}

// PostUsecase は投稿操作のユースケースを定義します。
type PostUsecase interface {
	List(ctx context.Context) ([]*postentity.Post, error)
	Get(ctx context.Context, id uint) (*postentity.Post, error)
	Create(ctx context.Context, title, text string, creatorID uint) (*postentity.Post, error)
	UpdateTitle(ctx context.Context, id uint, title string) (*postentity.Post, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// ErrNotAuthenticated is returned by resolvers that require a session.
var ErrNotAuthenticated = errors.New("not authenticated")

// userResponse mirrors the UserResponse GraphQL type.
type userResponse struct {
	Errors []authentity.FieldError `json:"errors"`
	User   *authentity.User        `json:"user"`
}

func toUserResponse(res *authusecase.Result) *userResponse {
	return &userResponse{Errors: res.Errors, User: res.User}
}

// Resolver implements every query and mutation of the schema.
// It owns the session-cookie handling; the usecases only ever see tokens.
type Resolver struct {
	auth       AuthUsecase
	posts      PostUsecase
	cookieName string
	cookieTTL  time.Duration
}

// NewResolver creates a Resolver with injected usecases.
func NewResolver(auth AuthUsecase, posts PostUsecase, cookieName string, cookieTTL time.Duration) *Resolver {
	return &Resolver{
		auth:       auth,
		posts:      posts,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
	}
}

// ginCtxKey keys the *gin.Context smuggled through the resolver context.
type ginCtxKey struct{}

// withGinContext stores the gin context for cookie access inside resolvers.
func withGinContext(ctx context.Context, c *gin.Context) context.Context {
	return context.WithValue(ctx, ginCtxKey{}, c)
}

func ginFromContext(ctx context.Context) *gin.Context {
	c, _ := ctx.Value(ginCtxKey{}).(*gin.Context)
	return c
}

// sessionToken reads the session cookie from the current request.
func (r *Resolver) sessionToken(ctx context.Context) string {
	c := ginFromContext(ctx)
	if c == nil {
		return ""
	}
	token, err := c.Cookie(r.cookieName)
	if err != nil {
		return ""
	}
	return token
}

// setSessionCookie attaches the session token to the response.
func (r *Resolver) setSessionCookie(ctx context.Context, token string) {
	c := ginFromContext(ctx)
	if c == nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(r.cookieName, token, int(r.cookieTTL.Seconds()), "/", "", false, true)
}

// clearSessionCookie expires the session cookie on the client.
func (r *Resolver) clearSessionCookie(ctx context.Context) {
	c := ginFromContext(ctx)
	if c == nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(r.cookieName, "", -1, "/", "", false, true)
}

// resolveMe handles the me query. Returns nil without a valid session.
func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.auth.CurrentUser(p.Context, r.sessionToken(p.Context))
	if err != nil {
		return nil, err
	}
	if user == nil {
		// graphql-goは型付きnilをnon-nullに解決してしまうため明示的にnilを返す
		return nil, nil
	}
	return user, nil
}

// resolveRegister handles the register mutation.
func (r *Resolver) resolveRegister(p graphql.ResolveParams) (interface{}, error) {
	options, _ := p.Args["options"].(map[string]interface{})
	email, _ := options["email"].(string)
	username, _ := options["username"].(string)
	password, _ := options["password"].(string)

	res, err := r.auth.Register(p.Context, email, username, password)
	if err != nil {
		return nil, err
	}
	if res.Token != "" {
		r.setSessionCookie(p.Context, res.Token)
	}
	return toUserResponse(res), nil
}

// resolveLogin handles the login mutation.
func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	usernameOrEmail, _ := p.Args["usernameOrEmail"].(string)
	password, _ := p.Args["password"].(string)

	res, err := r.auth.Login(p.Context, usernameOrEmail, password)
	if err != nil {
		return nil, err
	}
	if res.Token != "" {
		r.setSessionCookie(p.Context, res.Token)
	}
	return toUserResponse(res), nil
}

// resolveLogout handles the logout mutation.
// The cookie is cleared even when destroying the server-side session fails.
func (r *Resolver) resolveLogout(p graphql.ResolveParams) (interface{}, error) {
	ok := r.auth.Logout(p.Context, r.sessionToken(p.Context))
	r.clearSessionCookie(p.Context)
	return ok, nil
}

// resolveForgotPassword handles the forgotPassword mutation.
func (r *Resolver) resolveForgotPassword(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	return r.auth.ForgotPassword(p.Context, email)
}

// resolveChangePassword handles the changePassword mutation.
func (r *Resolver) resolveChangePassword(p graphql.ResolveParams) (interface{}, error) {
	token, _ := p.Args["token"].(string)
	newPassword, _ := p.Args["newPassword"].(string)

	res, err := r.auth.ChangePassword(p.Context, token, newPassword)
	if err != nil {
		return nil, err
	}
	if res.Token != "" {
		r.setSessionCookie(p.Context, res.Token)
	}
	return toUserResponse(res), nil
}
