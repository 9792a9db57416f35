// @title           joe-bookmarks API
// @version         1.0
// @description     Personal bookmark manager with short urls and visit stats. Authenticate with a JWT or a personal access token.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and your token. Example: "Bearer jb_xxx"
package api
