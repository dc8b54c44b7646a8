// Package blog implements the blog administration use cases on top of
// storage.Storage: categories, tags, articles, comments, the guestbook,
// friend links and system settings.
//
// Services validate and normalize input, translate storage results into
// semantic errors from pkg/serrors and never talk HTTP.
package blog
