package site

// Static assets served under /static/. The stylesheet reads all colors,
// radii and fonts from the :root variables injected per request, so a theme
// change needs no stylesheet rebuild.

const cssContent = `*,
*::before,
*::after { box-sizing: border-box; margin: 0; padding: 0; }

html { scroll-behavior: smooth; }

body {
  background: var(--color-bg);
  color: var(--color-text);
  font-family: var(--font-family-base);
  line-height: 1.6;
}

.container { max-width: 1000px; margin: 0 auto; padding: 0 1.5rem; }

a { color: var(--color-primary); text-decoration: none; }
a:hover { text-decoration: underline; }

.nav {
  position: sticky; top: 0; z-index: 10;
  background: var(--glass-bg);
  backdrop-filter: blur(10px);
  border-bottom: 1px solid var(--color-surface-light);
}
.nav-inner { display: flex; align-items: center; justify-content: space-between; height: 64px; }
.nav-logo { font-weight: 700; font-size: 1.3rem; color: var(--color-primary); }
.nav-links { display: flex; align-items: center; gap: 1.25rem; }
.nav-links a { color: var(--color-text); font-size: 0.95rem; }

.theme-toggle {
  background: none; border: 1px solid var(--color-surface-light);
  color: var(--color-text);
  border-radius: var(--radius-button);
  width: 2.2rem; height: 2.2rem; cursor: pointer; font-size: 1rem;
}

.hero { min-height: 85vh; display: flex; align-items: center; }
.hero-photo {
  width: 140px; height: 140px; object-fit: cover;
  border-radius: var(--radius-button);
  border: 2px solid var(--color-primary);
  margin-bottom: 1.5rem;
}
.hero-greeting { color: var(--color-primary); margin-bottom: 0.5rem; }
.hero-name { font-size: clamp(2.2rem, 7vw, 4rem); }
.hero-role { font-size: clamp(1.4rem, 5vw, 2.4rem); color: var(--color-text-muted); }
.hero-bio { max-width: 34rem; margin: 1rem 0 2rem; color: var(--color-text-muted); }

.btn {
  display: inline-block; padding: 0.7rem 1.6rem;
  border-radius: var(--radius-global); font-weight: 600;
}
.btn-primary { border: 1px solid var(--color-primary); color: var(--color-primary); }
.btn-primary:hover { background: var(--color-surface); text-decoration: none; }

.section { padding: 5rem 0; }
.section-title { font-size: 1.6rem; margin-bottom: 2rem; }
.section-title span { color: var(--color-primary); font-family: monospace; margin-right: 0.4rem; }

.about-body { color: var(--color-text-muted); max-width: 40rem; }
.about-body p { margin-bottom: 0.75rem; }
.about-facts { list-style: none; margin-top: 1.25rem; color: var(--color-text-muted); }

.skills-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1.5rem; }
.skill-group {
  background: var(--color-surface);
  border: 1px solid var(--color-surface-light);
  border-radius: var(--radius-card);
  padding: 1.25rem;
}
.skill-category { margin-bottom: 0.75rem; font-size: 1.05rem; }
.skill-pills, .tech-pills { display: flex; flex-wrap: wrap; gap: 0.5rem; }
.skill-pill, .tech-pill {
  display: inline-flex; align-items: center; gap: 0.35rem;
  background: var(--color-bg);
  border: 1px solid var(--color-surface-light);
  border-radius: var(--radius-button);
  padding: 0.25rem 0.75rem; font-size: 0.85rem;
  color: var(--color-text-muted);
}
.skill-icon, .tech-icon { width: 1rem; height: 1rem; object-fit: contain; }

.timeline { display: flex; flex-direction: column; gap: 1.5rem; }
.exp-card, .edu-card, .research-card, .doc-card, .custom-card {
  background: var(--color-surface);
  border: 1px solid var(--color-surface-light);
  border-radius: var(--radius-card);
  padding: 1.5rem;
}
.exp-company { color: var(--color-primary); }
.exp-meta, .edu-meta, .research-meta, .custom-date { color: var(--color-text-muted); font-size: 0.9rem; }
.exp-desc, .edu-details { margin-top: 0.75rem; color: var(--color-text-muted); }
.edu-institution, .custom-subtitle { color: var(--color-primary); }

.project-grid, .doc-grid, .custom-grid {
  display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1.5rem;
}
.project-card {
  background: var(--color-surface);
  border: 1px solid var(--color-surface-light);
  border-radius: var(--radius-card);
  overflow: hidden;
  display: flex; flex-direction: column;
}
.project-image { width: 100%; height: 160px; object-fit: cover; }
.project-body { padding: 1.25rem; display: flex; flex-direction: column; gap: 0.75rem; flex: 1; }
.project-body p { color: var(--color-text-muted); font-size: 0.95rem; flex: 1; }
.project-links, .research-links { display: flex; gap: 1rem; font-size: 0.9rem; }

.research-authors { color: var(--color-text-muted); font-style: italic; font-size: 0.9rem; }
.status-badge {
  display: inline-block; margin-top: 0.5rem;
  padding: 0.15rem 0.7rem; border-radius: var(--radius-button);
  font-size: 0.75rem; font-weight: 600; text-transform: uppercase;
}
.status-published { background: rgba(100, 255, 150, 0.12); color: #4ade80; }
.status-under-review { background: rgba(255, 200, 80, 0.12); color: #facc15; }
.status-draft { background: rgba(160, 160, 160, 0.15); color: var(--color-text-muted); }

.doc-card p { color: var(--color-text-muted); margin: 0.5rem 0 1rem; }
.doc-link { font-size: 0.9rem; }

.custom-badge { width: 3rem; height: 3rem; object-fit: contain; margin-bottom: 0.75rem; }

.empty-note { color: var(--color-text-muted); }

#contact .container { text-align: center; }
.contact-blurb { color: var(--color-text-muted); margin-bottom: 1.5rem; }
.contact-links { margin-top: 2rem; display: flex; justify-content: center; gap: 1.5rem; }

.footer { padding: 2rem 0; text-align: center; color: var(--color-text-muted); font-size: 0.85rem; }

.hidden-section { opacity: 0; transform: translateY(24px); transition: opacity 0.6s ease, transform 0.6s ease; }
.hidden-section.visible { opacity: 1; transform: none; }

@media (max-width: 640px) {
  .nav-links a:not(.theme-toggle) { display: none; }
  .section { padding: 3.5rem 0; }
}
`

const scriptContent = `(function () {
  'use strict';

  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      if (entry.isIntersecting) {
        entry.target.classList.add('visible');
        observer.unobserve(entry.target);
      }
    });
  }, { threshold: 0.1 });

  document.querySelectorAll('.hidden-section').forEach(function (el) {
    observer.observe(el);
  });

  var toggle = document.getElementById('theme-toggle');
  if (toggle) {
    toggle.addEventListener('click', function () {
      fetch('/theme/toggle', { method: 'POST' }).then(function () {
        location.reload();
      });
    });
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + location.host + '/events');
    ws.onmessage = function (msg) {
      if (msg.data === 'reload') {
        location.reload();
      }
    };
    ws.onclose = function () {
      setTimeout(connect, 3000);
    };
  }
  connect();
})();
`
