// Package django converts Django project-analyzer exports to the
// unified graph model.
//
// The input carries three parallel lists (apps, models, views) plus a
// project metadata block. [Convert] emits one node per app, model, and
// view; model and view ids are qualified by their owning app so
// same-named models in different apps stay distinct. Relationship
// references resolve through namespaced lookup keys ("app_", "model_",
// "view_" prefixes) since the three kinds occupy distinct namespaces.
//
// A model relationship naming a model absent from the export still
// renders as a Relationships line on the owning model, but produces no
// edge.
package django
