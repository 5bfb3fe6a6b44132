package app

import (
	"html/template"
	"strings"
)

const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - psview</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
</head>
<body>
<nav class="navbar navbar-dark bg-dark mb-4">
  <div class="container">
    <a class="navbar-brand" href="/">psview</a>
    <a class="nav-link text-light" href="/pokedex">Pokédex</a>
    <form class="d-flex" action="/search" method="get">
      <input class="form-control me-2" type="search" name="q" value="{{.Query}}" placeholder="Search a Pokémon">
    </form>
  </div>
</nav>
<main class="container">
{{range .Flashes}}<div class="alert alert-{{.Category}}" role="alert">{{.Message}}</div>
{{end}}{{template "content" .}}
</main>
</body>
</html>
{{end}}`

const entriesTemplate = `{{define "entries"}}<div class="row">
{{range .}}<div class="col-md-3 col-sm-4 mb-3">
  <div class="card text-center">
    <img class="card-img-top mx-auto mt-2" style="width: auto; max-height: 96px" src="{{.Sprite}}" alt="{{.Name}}" loading="lazy">
    <div class="card-body">
      <h6 class="card-subtitle text-muted">#{{.Num}}</h6>
      <h5 class="card-title"><a href="/pokemon/{{.ID}}">{{.Name}}</a></h5>
      {{range .Types}}<span class="badge bg-secondary">{{.}}</span> {{end}}
    </div>
  </div>
</div>
{{end}}</div>{{end}}`

var pageTemplates = map[string]string{
	"index": `{{define "content"}}<div class="text-center">
<h1>Pokémon Showdown data</h1>
<p class="lead">Browse the Pokédex, or look a Pokémon up by name.</p>
<form action="/search" method="get" class="d-flex justify-content-center">
  <input class="form-control w-50 me-2" type="search" name="q" placeholder="pikachu, char, Mr. Mime...">
  <button class="btn btn-primary" type="submit">Search</button>
</form>
<p class="mt-3"><a href="/pokedex">Full Pokédex</a></p>
</div>{{end}}`,

	"pokedex": `{{define "content"}}<h1>Pokédex</h1>
<p>{{len .Entries}} Pokémon</p>
{{template "entries" .Entries}}{{end}}`,

	"search": `{{define "content"}}<h1>Results for “{{.Query}}”</h1>
{{if .Entries}}<p>{{len .Entries}} found</p>
{{template "entries" .Entries}}{{else}}<p>No Pokémon found.</p>{{end}}{{end}}`,

	"pokemon": `{{define "content"}}{{with .Detail}}<div class="row">
<div class="col-md-4 text-center">
  <img src="{{.Sprite}}" alt="{{.Name}}">
  <h1>{{.Name}}</h1>
  <h4 class="text-muted">#{{.Num}}</h4>
  {{range .Types}}<span class="badge bg-secondary">{{.}}</span> {{end}}
  {{if .Abilities}}<p class="mt-3">Abilities: {{join .Abilities ", "}}</p>{{end}}
</div>
<div class="col-md-8">
{{if .Stats}}<h3>Base stats</h3>
<table class="table table-sm">
{{range .Stats}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
{{end}}</table>{{end}}
{{if .Moves}}<h3>Moves</h3>
<table class="table table-striped table-sm">
<thead><tr><th>Name</th><th>Type</th><th>Power</th><th>Accuracy</th><th>PP</th><th>Category</th></tr></thead>
<tbody>
{{range .Moves}}<tr><td>{{.Name}}</td><td>{{.Type}}</td><td>{{.Power}}</td><td>{{.Accuracy}}</td><td>{{.PP}}</td><td>{{.Category}}</td></tr>
{{end}}</tbody>
</table>{{end}}
<p><a href="/api/pokemon/{{.ID}}">Raw data</a></p>
</div>
</div>{{end}}{{end}}`,

	"error": `{{define "content"}}<h1>Something went wrong</h1>
<p class="text-danger">{{.Error}}</p>
<p><a href="/">Back to the search</a></p>{{end}}`,
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

var templates = parseTemplates()

func parseTemplates() map[string]*template.Template {
	base := template.Must(template.New("layout").Funcs(funcs).Parse(layoutTemplate))
	template.Must(base.Parse(entriesTemplate))

	result := map[string]*template.Template{}
	for name, text := range pageTemplates {
		t := template.Must(base.Clone())
		result[name] = template.Must(t.Parse(text))
	}
	return result
}
