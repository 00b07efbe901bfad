package render

const meetTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Record.Name}}</title>
  <link rel="stylesheet" href="{{.Site.CSSReset}}">
  <link rel="stylesheet" href="{{.Site.CSSStyle}}">
</head>

<body>
<a class="skip-link" href="#main">Skip to Main Content</a>

<header>
  <div class="header-content">
    <img src="{{.Site.LogoURL}}" alt="{{.Site.ShortLabel}} High School logo">
    <div class="header-text">
      <h1>{{.Record.Name}}</h1>
      <p>{{.Record.Date}} &nbsp; <a href="{{.Record.ResultsURL}}">Meet results</a></p>
    </div>
  </div>
</header>

<main id="main">
  <p>{{.Record.SummaryText}}</p>

  <table>
    <caption>{{.Site.ShortLabel}} Results</caption>
    <thead>
      <tr>
        <th scope="col">Name</th>
        <th scope="col">Time</th>
        <th scope="col">Placement</th>
        <th scope="col">Grade</th>
      </tr>
    </thead>
    <tbody>
{{- range .Record.Filtered}}
      <tr>
        <td>{{if .AthleteLink}}<a href="{{.AthleteLink}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</td>
        <td>{{.Time}}</td>
        <td>{{ordinal .Place}}</td>
        <td>{{.Grade}}</td>
      </tr>
{{- else}}
      <tr>
        <td colspan="4">{{$.EmptyMessage}}</td>
      </tr>
{{- end}}
    </tbody>
  </table>
</main>

<footer>
  <p>All data gathered from team race records.</p>
</footer>

</body>
</html>
`

const athleteTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Record.Name}}</title>
  <link rel="stylesheet" href="{{.Site.CSSReset}}">
  <link rel="stylesheet" href="{{.Site.CSSStyle}}">
</head>

<body>
<header>
  <div class="header-content">
    <img src="{{.Site.LogoURL}}" alt="{{.Site.ShortLabel}} High School logo">
    <div class="header-text">
      <h1>{{.Record.Name}}</h1>
      <p>Grade: {{.Grade}} &nbsp; <a href="{{.ProfileURL}}">Athletic.net Profile</a></p>
    </div>
  </div>
</header>

<main>
  <p>{{.Bio}}</p>
  <img src="{{.ImageURL}}" alt="{{.Record.Name}} profile photo">

{{- range .Groups}}
  <table>
    <caption>{{.Caption}}</caption>
    <thead>
      <tr>
        <th scope="col">Race</th>
        <th scope="col">Time</th>
        <th scope="col">Placement</th>
      </tr>
    </thead>
    <tbody>
{{- range .Races}}
      <tr>
        <td><a href="{{.MeetURL}}">{{.MeetName}}</a></td>
        <td>{{.Time}}</td>
        <td>{{ordinal .Place}}</td>
      </tr>
{{- end}}
    </tbody>
  </table>
{{- end}}
</main>

<footer>
  <p>All data gathered from the team's race spreadsheet.</p>
</footer>
</body>
</html>
`

const homeTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Site.TeamLabel}} Home Page</title>
  <link rel="stylesheet" href="{{.Site.CSSReset}}">
  <link rel="stylesheet" href="{{.Site.CSSStyle}}">
</head>

<body>
<header>
  <div class="header-content">
    <img src="{{.Site.LogoURL}}" alt="{{.Site.ShortLabel}} High School logo">
    <div class="header-text">
      <h1>{{.Site.TeamLabel}}</h1>
      <p>Welcome to the home for {{.Site.TeamLabel}}. Find information on recent races, individual stats, and more.</p>
    </div>
  </div>
</header>

<main>
  <h2>Recent Races</h2>
{{- range .Races}}
  <article>
    <h2>{{.Name}}</h2>
    <p>{{.Date}}</p>
    <h3>Top {{$.Site.ShortLabel}} Runners</h3>
    <dl>
{{- range .Runners}}
      <dt>{{if .Link}}<a href="{{.Link}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</dt>
      <dd>{{.Time}}</dd>
{{- end}}
    </dl>
    <p><a href="{{.Link}}">Meet Results</a></p>
  </article>
{{- end}}
</main>

<section class="roster-section">
  <button class="roster-toggle" aria-expanded="false" aria-controls="roster-list">
    Show/Hide Roster
  </button>

  <ul id="roster-list" class="roster-list" hidden>
{{- range .Roster}}
    <li>
      <a href="{{.Link}}">{{.Name}}</a>
    </li>
{{- end}}
  </ul>
</section>

<footer>
  <p>All data gathered from the team race spreadsheet.</p>
</footer>
</body>
</html>
`
