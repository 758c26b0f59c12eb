package main

// General API documentation for swaggo. Regenerate with
// `swag init -g cmd/eventd/docs.go -o internal/httpapi/docs`.
//
// @title           eventd API
// @version         1.0
// @description     HTTP surface for dispatching configured application events.
//
// @contact.name   eventd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
