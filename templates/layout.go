package templates

import "github.com/a-h/templ"

const toastScript = `
function showToast(message, type) {
  var box = document.getElementById('toast-container');
  if (!box) return;
  var el = document.createElement('div');
  el.className = 'alert ' + (type === 'error' ? 'alert-error' : 'alert-success');
  el.textContent = message;
  box.appendChild(el);
  setTimeout(function () { el.remove(); }, 3000);
}
document.body.addEventListener('showToast', function (evt) {
  showToast(evt.detail.message, evt.detail.type);
});
(function () {
  var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!m) return;
  document.cookie = 'flash_toast=; Max-Age=0; path=/';
  try {
    var t = JSON.parse(decodeURIComponent(m[1].replace(/\+/g, ' ')));
    showToast(t.message, t.type);
  } catch (e) {}
})();
`

// Layout wraps body in the full HTML document.
func Layout(title string, body templ.Component) templ.Component {
	return componentFunc(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en" data-theme="light"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` | AV Estimator</title>`)
		h.raw(`<link href="https://cdn.jsdelivr.net/npm/daisyui@5" rel="stylesheet" type="text/css">`)
		h.raw(`<script src="https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"></script>`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.raw(`</head><body class="min-h-screen bg-base-200">`)
		h.raw(`<div class="navbar bg-base-100 shadow-sm"><a class="btn btn-ghost text-xl" href="/projects">AV Estimator</a></div>`)
		h.raw(`<main class="container mx-auto p-4">`)
		h.component(body)
		h.raw(`</main><div id="toast-container" class="toast toast-end"></div>`)
		h.raw(`<script>` + toastScript + `</script></body></html>`)
	})
}
