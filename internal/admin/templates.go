package admin

const loginTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Admin Login</title>
<style>
body{background:#0a192f;color:#ccd6f6;font-family:system-ui,sans-serif;display:flex;align-items:center;justify-content:center;min-height:100vh;margin:0}
form{background:#112240;padding:2rem;border-radius:8px;width:20rem;display:flex;flex-direction:column;gap:0.75rem}
h1{font-size:1.2rem;margin:0 0 .5rem}
input{padding:.6rem;border:1px solid #233554;border-radius:4px;background:#0a192f;color:#ccd6f6}
button{padding:.6rem;border:none;border-radius:4px;background:#64ffda;color:#0a192f;font-weight:600;cursor:pointer}
.error{color:#ff6b6b;font-size:.85rem;margin:0}
</style>
</head>
<body>
<form method="post" action="/admin/login">
  <h1>Admin Login</h1>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <input name="username" placeholder="Username" autocomplete="username" required>
  <input name="password" type="password" placeholder="Password" autocomplete="current-password" required>
  <button type="submit">Sign in</button>
</form>
</body>
</html>`

const panelTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Admin Panel</title>
<style>
body{background:#0a192f;color:#ccd6f6;font-family:system-ui,sans-serif;margin:0;line-height:1.5}
.wrap{max-width:900px;margin:0 auto;padding:1.5rem}
header.bar{display:flex;align-items:center;justify-content:space-between;gap:1rem;flex-wrap:wrap}
h1{font-size:1.3rem}
h2{font-size:1.05rem;border-bottom:1px solid #233554;padding-bottom:.4rem;margin-top:2.5rem}
h3{font-size:.95rem;color:#64ffda}
fieldset{border:1px solid #233554;border-radius:6px;margin:1rem 0;padding:1rem}
legend{padding:0 .4rem;color:#8892b0;font-size:.8rem}
label{display:block;font-size:.8rem;color:#8892b0;margin-top:.5rem}
input,textarea,select{width:100%;box-sizing:border-box;padding:.45rem;border:1px solid #233554;border-radius:4px;background:#112240;color:#ccd6f6;font:inherit}
textarea{min-height:4.5rem}
button{padding:.45rem .9rem;border:none;border-radius:4px;background:#233554;color:#ccd6f6;cursor:pointer;font-size:.85rem}
button.primary{background:#64ffda;color:#0a192f;font-weight:600}
button.danger{background:#7f1d1d;color:#fecaca}
.row{display:flex;gap:.4rem;flex-wrap:wrap;margin-top:.6rem}
.row form{display:inline}
.status{padding:.6rem 1rem;border-radius:6px;margin:1rem 0;background:#112240;border:1px solid #233554}
.status.ok{border-color:#64ffda;color:#64ffda}
.status.err{border-color:#ff6b6b;color:#ff6b6b}
code{background:#112240;padding:.15rem .4rem;border-radius:4px;word-break:break-all}
</style>
</head>
<body>
<div class="wrap">
<header class="bar">
  <h1>Portfolio Editor</h1>
  <div class="row">
    <a href="/" style="color:#64ffda;align-self:center">View site</a>
    <form method="post" action="/admin/save"><button class="primary" type="submit">Save Content</button></form>
    <form method="post" action="/admin/save-theme"><button class="primary" type="submit">Save Theme</button></form>
    <form method="post" action="/admin/logout"><button type="submit">Log out</button></form>
  </div>
</header>

{{if eq .Status "saved"}}<div class="status ok">Content saved to the endpoint.</div>{{end}}
{{if eq .Status "theme-saved"}}<div class="status ok">Theme saved to the endpoint.</div>{{end}}
{{if eq .Status "save-failed"}}<div class="status err">Content save failed. Your edits are still here; try again.</div>{{end}}
{{if eq .Status "theme-save-failed"}}<div class="status err">Theme save failed. Your edits are still here; try again.</div>{{end}}
{{if eq .Status "upload-failed"}}<div class="status err">Upload failed.</div>{{end}}
{{if .Uploaded}}<div class="status ok">Uploaded: <code>{{.Uploaded}}</code></div>{{end}}

<h2 id="profile">Profile</h2>
<form method="post" action="/admin/profile">
  <input type="hidden" name="tab" value="profile">
  <label>Name</label><input name="name" value="{{.Doc.Profile.Name}}">
  <label>Role</label><input name="role" value="{{.Doc.Profile.Role}}">
  <label>Bio</label><textarea name="bio">{{.Doc.Profile.Bio}}</textarea>
  <label>About (markdown)</label><textarea name="aboutDesc">{{.Doc.Profile.AboutDesc}}</textarea>
  <label>Location</label><input name="location" value="{{.Doc.Profile.Location}}">
  <label>Email</label><input name="email" value="{{.Doc.Profile.Email}}">
  <label>GitHub URL</label><input name="github" value="{{.Doc.Profile.GitHub}}">
  <label>LinkedIn URL</label><input name="linkedin" value="{{.Doc.Profile.LinkedIn}}">
  <label>Photo URL</label><input name="photoUrl" value="{{.Doc.Profile.PhotoURL}}">
  <div class="row"><button class="primary" type="submit">Apply</button></div>
</form>

<h2 id="skills">Skills</h2>
<form method="post" action="/admin/skills/categories/add" class="row">
  <input type="hidden" name="tab" value="skills">
  <input name="name" placeholder="New category name" style="width:14rem">
  <button type="submit">Add category</button>
</form>
{{range $g := .Doc.Skills}}
{{$cat := pathEscape $g.Category}}
<fieldset>
  <legend>{{$g.Category}}</legend>
  {{range $i, $e := $g.Entries}}
  <div class="row">
    <form method="post" action="/admin/skills/{{$cat}}/{{$i}}" class="row">
      <input type="hidden" name="tab" value="skills">
      <input name="name" value="{{$e.Name}}" style="width:10rem">
      <input name="iconUrl" value="{{$e.IconURL}}" placeholder="Icon URL" style="width:14rem">
      <button type="submit">Apply</button>
    </form>
    <form method="post" action="/admin/skills/{{$cat}}/{{$i}}/move"><input type="hidden" name="tab" value="skills"><input type="hidden" name="dir" value="-1"><button type="submit">&uarr;</button></form>
    <form method="post" action="/admin/skills/{{$cat}}/{{$i}}/move"><input type="hidden" name="tab" value="skills"><input type="hidden" name="dir" value="1"><button type="submit">&darr;</button></form>
    <form method="post" action="/admin/skills/{{$cat}}/{{$i}}/delete"><input type="hidden" name="tab" value="skills"><button class="danger" type="submit">Delete</button></form>
  </div>
  {{end}}
  <form method="post" action="/admin/skills/{{$cat}}/add" class="row">
    <input type="hidden" name="tab" value="skills">
    <input name="name" placeholder="Skill name" style="width:10rem">
    <input name="iconUrl" placeholder="Icon URL (optional)" style="width:14rem">
    <button type="submit">Add skill</button>
  </form>
  <form method="post" action="/admin/skills/{{$cat}}/delete" class="row" onsubmit="return confirm('Delete this category and all its skills?')">
    <input type="hidden" name="tab" value="skills">
    <button class="danger" type="submit">Delete category</button>
  </form>
</fieldset>
{{end}}

<h2 id="experience">Experience</h2>
<form method="post" action="/admin/list/experience/add" class="row"><input type="hidden" name="tab" value="experience"><button type="submit">Add entry</button></form>
{{range $i, $e := .Doc.Experience}}
<fieldset>
  <legend>#{{$i}}</legend>
  <form method="post" action="/admin/list/experience/{{$i}}">
    <input type="hidden" name="tab" value="experience">
    <label>Role</label><input name="role" value="{{$e.Role}}">
    <label>Company</label><input name="company" value="{{$e.Company}}">
    <label>Date</label><input name="date" value="{{$e.Date}}">
    <label>Location</label><input name="location" value="{{$e.Location}}">
    <label>Description</label><textarea name="desc">{{$e.Desc}}</textarea>
    <label>Document URL</label><input name="docUrl" value="{{$e.DocURL}}">
    <div class="row"><button class="primary" type="submit">Apply</button></div>
  </form>
  <div class="row">
    <form method="post" action="/admin/list/experience/{{$i}}/move"><input type="hidden" name="tab" value="experience"><input type="hidden" name="dir" value="-1"><button type="submit">&uarr;</button></form>
    <form method="post" action="/admin/list/experience/{{$i}}/move"><input type="hidden" name="tab" value="experience"><input type="hidden" name="dir" value="1"><button type="submit">&darr;</button></form>
    <form method="post" action="/admin/list/experience/{{$i}}/delete"><input type="hidden" name="tab" value="experience"><button class="danger" type="submit">Delete</button></form>
  </div>
</fieldset>
{{end}}

<h2 id="education">Education</h2>
<form method="post" action="/admin/list/education/add" class="row"><input type="hidden" name="tab" value="education"><button type="submit">Add entry</button></form>
{{range $i, $e := .Doc.Education}}
<fieldset>
  <legend>#{{$i}}</legend>
  <form method="post" action="/admin/list/education/{{$i}}">
    <input type="hidden" name="tab" value="education">
    <label>Degree</label><input name="degree" value="{{$e.Degree}}">
    <label>Institution</label><input name="institution" value="{{$e.Institution}}">
    <label>Start year</label><input name="startYear" value="{{$e.StartYear}}">
    <label>End year</label><input name="endYear" value="{{$e.EndYear}}">
    <label>Location</label><input name="location" value="{{$e.Location}}">
    <label>Details</label><textarea name="details">{{$e.Details}}</textarea>
    <label>Document URL</label><input name="docUrl" value="{{$e.DocURL}}">
    <div class="row"><button class="primary" type="submit">Apply</button></div>
  </form>
  <div class="row">
    <form method="post" action="/admin/list/education/{{$i}}/move"><input type="hidden" name="tab" value="education"><input type="hidden" name="dir" value="-1"><button type="submit">&uarr;</button></form>
    <form method="post" action="/admin/list/education/{{$i}}/move"><input type="hidden" name="tab" value="education"><input type="hidden" name="dir" value="1"><button type="submit">&darr;</button></form>
    <form method="post" action="/admin/list/education/{{$i}}/delete"><input type="hidden" name="tab" value="education"><button class="danger" type="submit">Delete</button></form>
  </div>
</fieldset>
{{end}}

<h2 id="projects">Projects</h2>
<form method="post" action="/admin/list/projects/add" class="row"><input type="hidden" name="tab" value="projects"><button type="submit">Add project</button></form>
{{range $i, $p := .Doc.Projects}}
<fieldset>
  <legend>#{{$i}}</legend>
  <form method="post" action="/admin/list/projects/{{$i}}">
    <input type="hidden" name="tab" value="projects">
    <label>Title</label><input name="title" value="{{$p.Title}}">
    <label>Description</label><textarea name="desc">{{$p.Desc}}</textarea>
    <label>Image URL</label><input name="imageUrl" value="{{$p.ImageURL}}">
    <label>Tech stack (comma separated)</label><input name="techStack" value="{{range $j, $t := $p.TechStack}}{{if $j}}, {{end}}{{$t.Name}}{{end}}">
    <label>GitHub URL</label><input name="githubUrl" value="{{$p.GitHubURL}}">
    <label>Live URL</label><input name="liveUrl" value="{{$p.LiveURL}}">
    <label>Document URL</label><input name="docUrl" value="{{$p.DocURL}}">
    <div class="row"><button class="primary" type="submit">Apply</button></div>
  </form>
  <div class="row">
    <form method="post" action="/admin/list/projects/{{$i}}/move"><input type="hidden" name="tab" value="projects"><input type="hidden" name="dir" value="-1"><button type="submit">&uarr;</button></form>
    <form method="post" action="/admin/list/projects/{{$i}}/move"><input type="hidden" name="tab" value="projects"><input type="hidden" name="dir" value="1"><button type="submit">&darr;</button></form>
    <form method="post" action="/admin/list/projects/{{$i}}/delete"><input type="hidden" name="tab" value="projects"><button class="danger" type="submit">Delete</button></form>
  </div>
</fieldset>
{{end}}

<h2 id="research">Research</h2>
<form method="post" action="/admin/list/research/add" class="row"><input type="hidden" name="tab" value="research"><button type="submit">Add paper</button></form>
{{range $i, $p := .Doc.Research}}
<fieldset>
  <legend>#{{$i}}</legend>
  <form method="post" action="/admin/list/research/{{$i}}">
    <input type="hidden" name="tab" value="research">
    <label>Title</label><input name="title" value="{{$p.Title}}">
    <label>Authors</label><input name="authors" value="{{$p.Authors}}">
    <label>Venue</label><input name="venue" value="{{$p.Venue}}">
    <label>Year</label><input name="year" value="{{$p.Year}}">
    <label>Status</label>
    <select name="status">
      <option value="Published" {{if eq $p.Status "Published"}}selected{{end}}>Published</option>
      <option value="Under Review" {{if eq $p.Status "Under Review"}}selected{{end}}>Under Review</option>
      <option value="Draft" {{if eq $p.Status "Draft"}}selected{{end}}>Draft</option>
    </select>
    <label>Paper URL</label><input name="paperUrl" value="{{$p.PaperURL}}">
    <label>Certificate URL</label><input name="certUrl" value="{{$p.CertURL}}">
    <div class="row"><button class="primary" type="submit">Apply</button></div>
  </form>
  <div class="row">
    <form method="post" action="/admin/list/research/{{$i}}/move"><input type="hidden" name="tab" value="research"><input type="hidden" name="dir" value="-1"><button type="submit">&uarr;</button></form>
    <form method="post" action="/admin/list/research/{{$i}}/move"><input type="hidden" name="tab" value="research"><input type="hidden" name="dir" value="1"><button type="submit">&darr;</button></form>
    <form method="post" action="/admin/list/research/{{$i}}/delete"><input type="hidden" name="tab" value="research"><button class="danger" type="submit">Delete</button></form>
  </div>
</fieldset>
{{end}}

<h2 id="documents">Documents</h2>
<form method="post" action="/admin/list/documents/add" class="row"><input type="hidden" name="tab" value="documents"><button type="submit">Add document</button></form>
{{range $i, $d := .Doc.Documents}}
<fieldset>
  <legend>#{{$i}}</legend>
  <form method="post" action="/admin/list/documents/{{$i}}">
    <input type="hidden" name="tab" value="documents">
    <label>Title</label><input name="title" value="{{$d.Title}}">
    <label>Description</label><textarea name="desc">{{$d.Desc}}</textarea>
    <label>URL</label><input name="url" value="{{$d.URL}}">
    <div class="row"><button class="primary" type="submit">Apply</button></div>
  </form>
  <div class="row">
    <form method="post" action="/admin/list/documents/{{$i}}/move"><input type="hidden" name="tab" value="documents"><input type="hidden" name="dir" value="-1"><button type="submit">&uarr;</button></form>
    <form method="post" action="/admin/list/documents/{{$i}}/move"><input type="hidden" name="tab" value="documents"><input type="hidden" name="dir" value="1"><button type="submit">&darr;</button></form>
    <form method="post" action="/admin/list/documents/{{$i}}/delete"><input type="hidden" name="tab" value="documents"><button class="danger" type="submit">Delete</button></form>
  </div>
</fieldset>
{{end}}

<h2 id="sections">Custom Sections</h2>
<form method="post" action="/admin/list/userSections/add" class="row"><input type="hidden" name="tab" value="sections"><button type="submit">Add section</button></form>
{{range $si, $s := .Doc.UserSections}}
<fieldset>
  <legend>Section #{{$si}}</legend>
  <form method="post" action="/admin/list/userSections/{{$si}}">
    <input type="hidden" name="tab" value="sections">
    <label>Title</label><input name="title" value="{{$s.Title}}">
    <label>Icon</label><input name="icon" value="{{$s.Icon}}">
    <div class="row"><button class="primary" type="submit">Apply</button></div>
  </form>
  <div class="row">
    <form method="post" action="/admin/list/userSections/{{$si}}/move"><input type="hidden" name="tab" value="sections"><input type="hidden" name="dir" value="-1"><button type="submit">&uarr;</button></form>
    <form method="post" action="/admin/list/userSections/{{$si}}/move"><input type="hidden" name="tab" value="sections"><input type="hidden" name="dir" value="1"><button type="submit">&darr;</button></form>
    <form method="post" action="/admin/list/userSections/{{$si}}/delete" onsubmit="return confirm('Delete this section and all its items?')"><input type="hidden" name="tab" value="sections"><button class="danger" type="submit">Delete section</button></form>
  </div>
  <h3>Items</h3>
  <form method="post" action="/admin/sections/{{$si}}/items/add" class="row"><input type="hidden" name="tab" value="sections"><button type="submit">Add item</button></form>
  {{range $i, $item := $s.Items}}
  <fieldset>
    <legend>Item #{{$i}}</legend>
    <form method="post" action="/admin/sections/{{$si}}/items/{{$i}}">
      <input type="hidden" name="tab" value="sections">
      <label>Title</label><input name="title" value="{{$item.Title}}">
      <label>Subtitle</label><input name="subtitle" value="{{$item.Subtitle}}">
      <label>Date</label><input name="date" value="{{$item.Date}}">
      <label>Description</label><textarea name="description">{{$item.Description}}</textarea>
      <label>Document URL</label><input name="docUrl" value="{{$item.DocURL}}">
      <label>Badge URL</label><input name="badgeUrl" value="{{$item.BadgeURL}}">
      <div class="row"><button class="primary" type="submit">Apply</button></div>
    </form>
    <div class="row">
      <form method="post" action="/admin/sections/{{$si}}/items/{{$i}}/move"><input type="hidden" name="tab" value="sections"><input type="hidden" name="dir" value="-1"><button type="submit">&uarr;</button></form>
      <form method="post" action="/admin/sections/{{$si}}/items/{{$i}}/move"><input type="hidden" name="tab" value="sections"><input type="hidden" name="dir" value="1"><button type="submit">&darr;</button></form>
      <form method="post" action="/admin/sections/{{$si}}/items/{{$i}}/delete"><input type="hidden" name="tab" value="sections"><button class="danger" type="submit">Delete</button></form>
    </div>
  </fieldset>
  {{end}}
</fieldset>
{{end}}

<h2 id="theme">Theme</h2>
<form method="post" action="/admin/theme/mode" class="row">
  <input type="hidden" name="tab" value="theme">
  <select name="mode" style="width:10rem">
    <option value="dark" {{if eq .Mode "dark"}}selected{{end}}>Dark</option>
    <option value="light" {{if eq .Mode "light"}}selected{{end}}>Light</option>
  </select>
  <button type="submit">Set active mode</button>
</form>
<fieldset>
  <legend>Variant: {{.Mode}}</legend>
  <form method="post" action="/admin/theme">
    <input type="hidden" name="tab" value="theme">
    <input type="hidden" name="mode" value="{{.Mode}}">
    <label>Primary color</label><input name="primaryColor" value="{{.Variant.PrimaryColor}}">
    <label>Secondary color</label><input name="secondaryColor" value="{{.Variant.SecondaryColor}}">
    <label>Background color</label><input name="backgroundColor" value="{{.Variant.BackgroundColor}}">
    <label>Surface color</label><input name="surfaceColor" value="{{.Variant.SurfaceColor}}">
    <label>Surface light color</label><input name="surfaceLightColor" value="{{.Variant.SurfaceLightColor}}">
    <label>Accent color</label><input name="accentColor" value="{{.Variant.AccentColor}}">
    <label>Text color</label><input name="textColor" value="{{.Variant.TextColor}}">
    <label>Muted text color</label><input name="textMutedColor" value="{{.Variant.TextMutedColor}}">
    <label>Glass color</label><input name="glassColor" value="{{.Variant.GlassColor}}">
    <label>Border radius</label><input name="borderRadius" value="{{.Variant.BorderRadius}}">
    <label>Card radius</label><input name="cardRadius" value="{{.Variant.CardRadius}}">
    <label>Button radius</label><input name="buttonRadius" value="{{.Variant.ButtonRadius}}">
    <label>Font family</label><input name="fontFamily" value="{{.Variant.FontFamily}}">
    <div class="row"><button class="primary" type="submit">Apply</button></div>
  </form>
</fieldset>

<h2 id="uploads">File Upload</h2>
<form method="post" action="/admin/upload" enctype="multipart/form-data" class="row">
  <input type="file" name="file" style="width:auto">
  <button class="primary" type="submit">Upload</button>
</form>

</div>
</body>
</html>`
