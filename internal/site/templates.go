package site

const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-mode="{{.Mode}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Doc.Profile.Name}} | {{.Doc.Profile.Role}}</title>
<style>{{.ThemeCSS}}</style>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<nav class="nav">
  <div class="container nav-inner">
    <a href="#home" class="nav-logo">{{.NavLogo}}</a>
    <div class="nav-links">
      <a href="#about">About</a>
      <a href="#experience">Experience</a>
      <a href="#projects">Projects</a>
      <a href="#contact">Contact</a>
      <button id="theme-toggle" class="theme-toggle" aria-label="Toggle theme">{{if eq .ModeIcon "moon"}}&#9790;{{else}}&#9728;{{end}}</button>
    </div>
  </div>
</nav>

<header id="home" class="hero">
  <div class="container hero-inner">
    {{if .Doc.Profile.PhotoURL}}<img class="hero-photo" src="{{viewURL .Doc.Profile.PhotoURL}}" alt="{{.Doc.Profile.Name}}">{{end}}
    <p class="hero-greeting">Hi, my name is</p>
    <h1 class="hero-name">{{.Doc.Profile.Name}}</h1>
    <h2 class="hero-role">{{.Doc.Profile.Role}}</h2>
    <p class="hero-bio">{{.Doc.Profile.Bio}}</p>
    <a href="#contact" class="btn btn-primary">Get In Touch</a>
  </div>
</header>

<main>
<section id="about" class="section">
  <div class="container hidden-section">
    <h2 class="section-title"><span>01.</span> About Me</h2>
    <div class="about-body">{{.AboutHTML}}</div>
    <ul class="about-facts">
      {{if .Doc.Profile.Location}}<li>{{.Doc.Profile.Location}}</li>{{end}}
      {{if .Doc.Profile.Email}}<li><a href="mailto:{{.Doc.Profile.Email}}">{{.Doc.Profile.Email}}</a></li>{{end}}
    </ul>
  </div>
</section>

<section id="skills" class="section">
  <div class="container hidden-section">
    <h2 class="section-title"><span>02.</span> Skills</h2>
    <div class="skills-grid">
      {{range .Doc.Skills}}
      <div class="skill-group">
        <h3 class="skill-category">{{capitalize .Category}}</h3>
        <div class="skill-pills">
          {{range .Entries}}
          <span class="skill-pill">{{if .IconURL}}<img class="skill-icon" src="{{viewURL .IconURL}}" alt="">{{end}}{{.Name}}</span>
          {{end}}
        </div>
      </div>
      {{end}}
    </div>
  </div>
</section>

<section id="experience" class="section">
  <div class="container hidden-section">
    <h2 class="section-title"><span>03.</span> Experience</h2>
    <div class="timeline">
      {{range .Doc.Experience}}
      <article class="exp-card">
        <header class="exp-head">
          <h3>{{.Role}} <span class="exp-company">@ {{.Company}}</span></h3>
          <p class="exp-meta">{{.Date}}{{if .Location}} &middot; {{.Location}}{{end}}</p>
        </header>
        <p class="exp-desc">{{.Desc}}</p>
        {{if .DocURL}}<a class="doc-link" href="{{viewURL .DocURL}}" target="_blank" rel="noopener">View document</a>{{end}}
      </article>
      {{end}}
    </div>
  </div>
</section>

<section id="education" class="section">
  <div class="container hidden-section">
    <h2 class="section-title"><span>04.</span> Education</h2>
    {{if .Doc.Education}}
    <div class="timeline">
      {{range .Doc.Education}}
      <article class="edu-card">
        <h3>{{.Degree}}</h3>
        <p class="edu-institution">{{.Institution}}</p>
        <p class="edu-meta">{{.StartYear}} &ndash; {{.EndYear}}{{if .Location}} &middot; {{.Location}}{{end}}</p>
        {{if .Details}}<p class="edu-details">{{.Details}}</p>{{end}}
        {{if .DocURL}}<a class="doc-link" href="{{viewURL .DocURL}}" target="_blank" rel="noopener">View document</a>{{end}}
      </article>
      {{end}}
    </div>
    {{else}}
    <p class="empty-note">No education added yet.</p>
    {{end}}
  </div>
</section>

<section id="projects" class="section">
  <div class="container hidden-section">
    <h2 class="section-title"><span>05.</span> Projects</h2>
    <div class="project-grid">
      {{range .Doc.Projects}}
      <article class="project-card">
        {{if .ImageURL}}<img class="project-image" src="{{viewURL .ImageURL}}" alt="{{.Title}}">{{end}}
        <div class="project-body">
          <h3>{{.Title}}</h3>
          <p>{{.Desc}}</p>
          <div class="tech-pills">
            {{range .TechStack}}
            <span class="tech-pill">{{if .IconURL}}<img class="tech-icon" src="{{viewURL .IconURL}}" alt="">{{end}}{{.Name}}</span>
            {{end}}
          </div>
          <div class="project-links">
            {{if .GitHubURL}}<a href="{{.GitHubURL}}" target="_blank" rel="noopener">Code</a>{{end}}
            {{if .LiveURL}}<a href="{{.LiveURL}}" target="_blank" rel="noopener">Live</a>{{end}}
            {{if .DocURL}}<a href="{{viewURL .DocURL}}" target="_blank" rel="noopener">Docs</a>{{end}}
          </div>
        </div>
      </article>
      {{end}}
    </div>
  </div>
</section>

<section id="research" class="section">
  <div class="container hidden-section">
    <h2 class="section-title"><span>06.</span> Research</h2>
    <div class="research-list">
      {{range .Doc.Research}}
      <article class="research-card">
        <h3>{{.Title}}</h3>
        <p class="research-authors">{{.Authors}}</p>
        <p class="research-meta">{{.Venue}}{{if .Year}} &middot; {{.Year}}{{end}}</p>
        <span class="status-badge {{statusClass .Status}}">{{.Status}}</span>
        <div class="research-links">
          {{if .PaperURL}}<a href="{{viewURL .PaperURL}}" target="_blank" rel="noopener">Paper</a>{{end}}
          {{if .CertURL}}<a href="{{viewURL .CertURL}}" target="_blank" rel="noopener">Certificate</a>{{end}}
        </div>
      </article>
      {{end}}
    </div>
  </div>
</section>

<section id="documents" class="section">
  <div class="container hidden-section">
    <h2 class="section-title"><span>07.</span> Documents</h2>
    <div class="doc-grid">
      {{range .Doc.Documents}}
      <article class="doc-card">
        <h3>{{.Title}}</h3>
        <p>{{.Desc}}</p>
        <a class="doc-link" href="{{viewURL .URL}}" target="_blank" rel="noopener">Open</a>
      </article>
      {{end}}
    </div>
  </div>
</section>

{{range $i, $sec := .Doc.UserSections}}
<section id="custom-{{$i}}" class="section">
  <div class="container hidden-section">
    <h2 class="section-title"><span>{{sectionNum $i}}.</span> {{$sec.Title}}</h2>
    <div class="custom-grid">
      {{range $sec.Items}}
      <article class="custom-card">
        {{if .BadgeURL}}<img class="custom-badge" src="{{viewURL .BadgeURL}}" alt="">{{end}}
        <h3>{{.Title}}</h3>
        {{if .Subtitle}}<p class="custom-subtitle">{{.Subtitle}}</p>{{end}}
        {{if .Date}}<p class="custom-date">{{.Date}}</p>{{end}}
        {{if .Description}}<p>{{.Description}}</p>{{end}}
        {{if .DocURL}}<a class="doc-link" href="{{viewURL .DocURL}}" target="_blank" rel="noopener">View document</a>{{end}}
      </article>
      {{end}}
    </div>
  </div>
</section>
{{end}}

<section id="contact" class="section">
  <div class="container hidden-section">
    <h2 class="section-title"><span>&#9993;</span> Get In Touch</h2>
    <p class="contact-blurb">My inbox is always open.</p>
    {{if .Doc.Profile.Email}}<a class="btn btn-primary" href="mailto:{{.Doc.Profile.Email}}">Say Hello</a>{{end}}
    <div class="contact-links">
      {{if .Doc.Profile.GitHub}}<a href="{{.Doc.Profile.GitHub}}" target="_blank" rel="noopener">GitHub</a>{{end}}
      {{if .Doc.Profile.LinkedIn}}<a href="{{.Doc.Profile.LinkedIn}}" target="_blank" rel="noopener">LinkedIn</a>{{end}}
    </div>
  </div>
</section>
</main>

<footer class="footer">
  <div class="container">
    <p>&copy; {{.Year}} {{.Doc.Profile.Name}}</p>
  </div>
</footer>

<script src="/static/app.js"></script>
</body>
</html>`

const errorTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>System Error</title>
<style>
body{background:#0a192f;color:#ccd6f6;font-family:system-ui,sans-serif;display:flex;align-items:center;justify-content:center;min-height:100vh;margin:0}
.error-box{text-align:center;max-width:28rem;padding:2rem}
.error-box h1{color:#ff6b6b;margin-bottom:.5rem}
.error-box button{margin-top:1.5rem;padding:.6rem 1.4rem;border:1px solid #64ffda;background:transparent;color:#64ffda;border-radius:6px;cursor:pointer}
</style>
</head>
<body>
<div class="error-box">
  <h1>System Error</h1>
  <p>Failed to load content. The remote endpoint is unreachable and no local copy is available.</p>
  <button onclick="location.reload()">Retry</button>
</div>
</body>
</html>`
