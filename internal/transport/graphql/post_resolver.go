package graphql

import (
	"github.com/graphql-go/graphql"
)

// resolvePosts handles the posts query.
func (r *Resolver) resolvePosts(p graphql.ResolveParams) (interface{}, error) {
	return r.posts.List(p.Context)
}

// resolvePost handles the post query. Missing posts resolve to null.
func (r *Resolver) resolvePost(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(int)
	post, err := r.posts.Get(p.Context, uint(id))
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return post, nil
}

// resolveCreatePost handles the createPost mutation.
// 有効なセッションがない場合はErrNotAuthenticatedで拒否します。
func (r *Resolver) resolveCreatePost(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.auth.CurrentUser(p.Context, r.sessionToken(p.Context))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	title, _ := p.Args["title"].(string)
	text, _ := p.Args["text"].(string)
	return r.posts.Create(p.Context, title, text, user.ID)
}

// resolveUpdatePost handles the updatePost mutation. Missing posts resolve to null.
func (r *Resolver) resolveUpdatePost(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(int)
	title, _ := p.Args["title"].(string)

	post, err := r.posts.UpdateTitle(p.Context, uint(id), title)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return post, nil
}

// resolveDeletePost handles the deletePost mutation.
func (r *Resolver) resolveDeletePost(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(int)
	return r.posts.Delete(p.Context, uint(id))
}
