package templates

const pageStyles = `
body{font-family:system-ui,sans-serif;margin:0;background:#f5f5f5;color:#212529}
.report{max-width:960px;margin:0 auto;padding:1rem}
.report-header{text-align:center}
.report-header h2{color:#646464;font-weight:normal}
.card{background:#fff;border-radius:8px;padding:1rem;margin-bottom:1rem;box-shadow:0 1px 2px rgba(0,0,0,.08)}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:1rem}
.form-control{display:flex;flex-direction:column;gap:.25rem;margin-bottom:.75rem}
.input{padding:.5rem;border:1px solid #ccc;border-radius:4px;font:inherit}
.input-error{border-color:#dc3545}
.field-error{color:#dc3545;font-size:.85rem;min-height:1em}
.required{color:#dc3545}
.table{width:100%;border-collapse:collapse}
.table th,.table td{padding:.25rem .5rem;text-align:left;vertical-align:top}
.num{text-align:right;white-space:nowrap}
.badge{font-size:.75rem;background:#e9ecef;border-radius:4px;padding:0 .4rem}
.badge-success{background:#d1e7dd}
.btn{display:inline-block;padding:.5rem 1rem;border:1px solid #212529;border-radius:4px;background:#fff;color:#212529;text-decoration:none;cursor:pointer;font:inherit}
.btn-primary{background:#212529;color:#fff}
.btn-ghost{border-color:transparent}
.btn[disabled]{opacity:.5;cursor:wait}
.actions{display:flex;gap:.5rem;flex-wrap:wrap}
.alert-error{background:#f8d7da;color:#842029;padding:.75rem;border-radius:4px;margin-bottom:1rem}
.total-summary{display:flex;gap:2rem;margin:0}
.total-summary dd{margin:0;font-weight:bold;font-size:1.2rem}
.product-results{list-style:none;padding:0;margin:0}
.muted{color:#646464}
.toast-container{position:fixed;top:1rem;right:1rem;display:flex;flex-direction:column;gap:.5rem;z-index:10}
.toast{padding:.75rem 1rem;border-radius:4px;color:#fff;background:#0d6efd}
.toast-success{background:#198754}
.toast-error{background:#dc3545}
.toast-warning{background:#fd7e14}
`

const pageScript = `
function growmateToast(message, type) {
  var box = document.getElementById('toast-container');
  if (!box || !message) return;
  var el = document.createElement('div');
  el.className = 'toast toast-' + (type || 'info');
  el.textContent = message;
  box.appendChild(el);
  setTimeout(function () { el.remove(); }, 4000);
}

document.body.addEventListener('showToast', function (evt) {
  growmateToast(evt.detail.message, evt.detail.type);
});

(function () {
  var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!m) return;
  document.cookie = 'flash_toast=; Max-Age=0; path=/';
  try {
    var t = JSON.parse(decodeURIComponent(m[1].replace(/\+/g, ' ')));
    growmateToast(t.message, t.type);
  } catch (e) {}
})();

function growmateToastFromResponse(res) {
  try {
    var t = JSON.parse(res.headers.get('HX-Trigger')).showToast;
    growmateToast(t.message, t.type);
  } catch (e) {
    growmateToast('Something went wrong. Please try again.', 'error');
  }
}

function growmateSelectProduct(ref) {
  document.querySelectorAll('.product-section').forEach(function (s) {
    s.hidden = s.dataset.product !== ref;
  });
  var sel = document.getElementById('product-select');
  if (sel) sel.value = ref;
  var active = document.getElementById('active-product');
  if (active) active.value = ref;
  var results = document.getElementById('product-results');
  if (results) results.innerHTML = '';
}

function growmateCanShareFiles() {
  if (!navigator.canShare) return false;
  try {
    var sample = new File([new Blob(['%PDF-'])], 'report.pdf', { type: 'application/pdf' });
    return navigator.canShare({ files: [sample] });
  } catch (e) {
    return false;
  }
}

async function growmateShare(btn) {
  var form = document.getElementById('report-form');
  var body = form ? new FormData(form) : new FormData();
  if (!body.get('author') && btn.dataset.author) body.set('author', btn.dataset.author);
  btn.disabled = true;
  try {
    var res = await fetch('/report/share', {
      method: 'POST',
      body: body,
      headers: { 'X-Share-Capable': growmateCanShareFiles() ? 'true' : 'false' }
    });
    if (!res.ok) {
      growmateToastFromResponse(res);
      return;
    }
    var header = function (name) { return decodeURIComponent(res.headers.get(name) || ''); };
    var blob = await res.blob();
    var file = new File([blob], header('X-Share-Filename'), { type: 'application/pdf' });
    await navigator.share({
      files: [file],
      title: header('X-Share-Title'),
      text: header('X-Share-Message')
    });
  } catch (err) {
    if (err && err.name === 'AbortError') return;
    growmateToast('Sharing the report failed. Please try again.', 'error');
  } finally {
    btn.disabled = false;
  }
}
`
