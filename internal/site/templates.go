package site

// markupTemplate renders the single self-contained portfolio page. Every
// editable item carries a data-component tag (experience-card, project-card,
// skill-tag, education-card, contact-item) so the behavior script knows what
// it is editing. Empty categories render a fixed placeholder instead of
// dropping the section.
const markupTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.View.Name}} | Portfolio</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<header class="site-header">
<div class="avatar">{{.Initials}}</div>
<h1>{{.View.Name}}</h1>
<nav>
<a href="#about">About</a>
<a href="#experience">Experience</a>
<a href="#projects">Projects</a>
<a href="#skills">Skills</a>
<a href="#education">Education</a>
<a href="#contact">Contact</a>
</nav>
</header>
<main>
<section id="about">
<h2>About</h2>
<p>Welcome to {{.View.Name}}'s portfolio.</p>
{{if .View.Achievements}}<div class="about-block">
<h3>Achievements</h3>
{{range .View.Achievements}}<p class="about-entry"><strong>{{.AchievementName}}</strong>{{if .InstituteName}} &mdash; {{.InstituteName}}{{end}}{{if .Description}}. {{.Description}}{{end}}</p>
{{end}}</div>
{{end}}{{if .View.Positions}}<div class="about-block">
<h3>Positions of Responsibility</h3>
{{range .View.Positions}}<p class="about-entry"><strong>{{.PositionName}}</strong>{{if .SocName}} &mdash; {{.SocName}}{{end}}{{if .Description}}. {{.Description}}{{end}}</p>
{{end}}</div>
{{end}}</section>
<section id="experience">
<h2>Experience</h2>
{{if .View.Experience}}<div class="card-grid">
{{range .View.Experience}}<div class="card" data-component="experience-card">
<h3>{{.Position}}</h3>
<p class="subtitle">{{.Company}}</p>
{{if .Skills}}<ul class="tag-list">{{range .Skills}}<li>{{.}}</li>{{end}}</ul>
{{end}}</div>
{{end}}</div>
{{else}}<p class="placeholder">No experience available</p>
{{end}}</section>
<section id="projects">
<h2>Projects</h2>
{{if .View.Projects}}<div class="card-grid">
{{range .View.Projects}}<div class="card" data-component="project-card">
<h3>{{.Title}}</h3>
<p>{{.Desc}}</p>
{{if .Tech}}<ul class="tag-list">{{range .Tech}}<li>{{.}}</li>{{end}}</ul>
{{end}}</div>
{{end}}</div>
{{else}}<p class="placeholder">No projects available</p>
{{end}}</section>
<section id="skills">
<h2>Skills</h2>
{{if .View.Skills}}<div class="skill-cloud">
{{range .View.Skills}}<span class="skill-tag" data-component="skill-tag">{{.}}</span>
{{end}}</div>
{{else}}<p class="placeholder">No skills available</p>
{{end}}</section>
<section id="education">
<h2>Education</h2>
{{if .View.Education}}<div class="card-grid">
{{range .View.Education}}<div class="card" data-component="education-card">
<h3>{{.DegreeName}}</h3>
<p class="subtitle">{{.InstituteName}}</p>
{{if .Marks}}<p class="marks">{{.Marks}}</p>
{{end}}</div>
{{end}}</div>
{{else}}<p class="placeholder">No education available</p>
{{end}}</section>
<section id="contact">
<h2>Contact</h2>
{{if .View.ContactInfo}}<div class="contact-list">
{{range $label, $value := .View.ContactInfo}}<div class="contact-item" data-component="contact-item">
<span class="contact-label">{{$label}}</span>
<span class="contact-value">{{$value}}</span>
</div>
{{end}}</div>
{{else}}<p class="placeholder">No contact information available</p>
{{end}}</section>
</main>
<footer>
<p>Generated portfolio of {{.View.Name}}</p>
</footer>
<script src="script.js"></script>
</body>
</html>
`

// styleTemplate is a total function over the resolved theme: the five palette
// colors, the font declaration, and the theme name for decorative extras.
// Candidate data never reaches the stylesheet. Two themes append animation
// rules; the professional default adds none.
const styleTemplate = `:root {
  --primary: {{.Primary}};
  --secondary: {{.Secondary}};
  --accent: {{.Accent}};
  --background: {{.Background}};
  --text: {{.Text}};
}

* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: {{.Font}};
  background: var(--background);
  color: var(--text);
  line-height: 1.6;
}

.site-header {
  background: linear-gradient(135deg, var(--primary), var(--secondary));
  color: #fff;
  text-align: center;
  padding: 3rem 1rem 2rem;
}

.avatar {
  width: 84px;
  height: 84px;
  border-radius: 50%;
  background: var(--accent);
  color: #fff;
  font-size: 2rem;
  font-weight: 700;
  line-height: 84px;
  margin: 0 auto 1rem;
}

nav { margin-top: 1rem; }

nav a {
  color: #fff;
  text-decoration: none;
  margin: 0 0.75rem;
  font-weight: 600;
}

nav a:hover { color: var(--accent); }

main { max-width: 960px; margin: 0 auto; padding: 1rem; }

section { padding: 2.5rem 0; border-bottom: 1px solid rgba(128, 128, 128, 0.2); }

section h2 {
  color: var(--primary);
  margin-bottom: 1.25rem;
}

.about-block { margin-top: 1.25rem; }
.about-block h3 { color: var(--secondary); margin-bottom: 0.5rem; }
.about-entry { margin-bottom: 0.5rem; }

.card-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
  gap: 1rem;
}

.card {
  background: rgba(255, 255, 255, 0.06);
  border: 1px solid var(--secondary);
  border-radius: 10px;
  padding: 1.25rem;
  cursor: pointer;
}

.card h3 { color: var(--secondary); }
.card .subtitle { color: var(--accent); font-weight: 600; }
.card .marks { font-style: italic; }

.tag-list { list-style: none; margin-top: 0.75rem; }

.tag-list li {
  display: inline-block;
  background: var(--primary);
  color: #fff;
  border-radius: 999px;
  padding: 0.1rem 0.6rem;
  margin: 0.15rem;
  font-size: 0.8rem;
}

.skill-cloud { display: flex; flex-wrap: wrap; gap: 0.5rem; }

.skill-tag {
  background: var(--primary);
  color: #fff;
  border-radius: 999px;
  padding: 0.3rem 0.9rem;
  cursor: pointer;
}

.contact-list { display: flex; flex-direction: column; gap: 0.5rem; }

.contact-item {
  display: flex;
  gap: 0.75rem;
  cursor: pointer;
}

.contact-label { font-weight: 700; color: var(--secondary); }

.placeholder { color: var(--text); opacity: 0.6; font-style: italic; }

footer { text-align: center; padding: 1.5rem; opacity: 0.7; }

.component-selected { outline: 3px dashed var(--accent); outline-offset: 3px; }

#edit-panel {
  position: fixed;
  right: 1rem;
  bottom: 1rem;
  width: 280px;
  background: var(--background);
  border: 2px solid var(--primary);
  border-radius: 10px;
  padding: 1rem;
  z-index: 1000;
}

#edit-panel h4 { color: var(--primary); margin-bottom: 0.5rem; }

#edit-panel textarea {
  width: 100%;
  font-family: inherit;
  margin-bottom: 0.5rem;
}

.edit-panel-actions button {
  background: var(--primary);
  color: #fff;
  border: none;
  border-radius: 6px;
  padding: 0.4rem 0.9rem;
  margin-right: 0.5rem;
  cursor: pointer;
}

.edit-notification {
  position: fixed;
  top: 1rem;
  right: 1rem;
  background: var(--primary);
  color: #fff;
  border-radius: 8px;
  padding: 0.6rem 1rem;
  z-index: 1001;
}

.edit-notification-error { background: #dc2626; }
{{if eq .Name "futuristic"}}
@keyframes neon-pulse {
  0%, 100% { box-shadow: 0 0 6px var(--primary); }
  50% { box-shadow: 0 0 18px var(--primary), 0 0 30px var(--secondary); }
}

.card, .skill-tag { animation: neon-pulse 3s ease-in-out infinite; }

.site-header h1 { text-shadow: 0 0 12px var(--primary); letter-spacing: 0.2em; text-transform: uppercase; }
{{end}}{{if eq .Name "playful"}}
@keyframes wobble {
  0%, 100% { transform: rotate(0deg); }
  25% { transform: rotate(-1.5deg); }
  75% { transform: rotate(1.5deg); }
}

.card:hover, .skill-tag:hover { animation: wobble 0.4s ease-in-out; }

.avatar { border: 4px dotted var(--accent); }
{{end}}`
