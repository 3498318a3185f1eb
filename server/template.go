package server

// indexHTML is the single dashboard page: two charts drawn from
// /api/series and a what-if form backed by /api/hedge.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>hedgecalc: {{.Pair}}</title>
<style>
body { font-family: sans-serif; margin: 2em; max-width: 960px; }
h1 { font-size: 1.4em; }
canvas { border: 1px solid #ccc; display: block; margin-bottom: 1.5em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
.error { color: #b00; }
form input { width: 8em; margin-right: 1em; }
</style>
</head>
<body>
<h1>ETF hedge dashboard: {{.Pair}}</h1>

<h2>What-if hedge</h2>
<form id="whatif">
  price <input name="price" value="100.0">
  units <input name="units" value="{{.Units}}">
  duration <input name="duration" value="{{.Duration}}">
  <button type="submit">Compute</button>
</form>
<p id="result"></p>

<h2>Closes</h2>
<canvas id="prices" width="920" height="240"></canvas>
<h2>Recommended hedge lots</h2>
<canvas id="lots" width="920" height="160"></canvas>

<h2>Latest days</h2>
<table id="tail"><thead><tr>
<th>date</th><th>close_etf</th><th>close_fut</th>
<th>etf_dv01</th><th>fut_dv01</th><th>hedge_lots</th>
</tr></thead><tbody></tbody></table>

<script>
function drawLine(canvas, values, color) {
  const ctx = canvas.getContext("2d");
  const min = Math.min(...values), max = Math.max(...values);
  const span = (max - min) || 1;
  ctx.strokeStyle = color;
  ctx.beginPath();
  values.forEach((v, i) => {
    const x = i / (values.length - 1 || 1) * (canvas.width - 10) + 5;
    const y = canvas.height - 5 - (v - min) / span * (canvas.height - 10);
    i === 0 ? ctx.moveTo(x, y) : ctx.lineTo(x, y);
  });
  ctx.stroke();
}

fetch("/api/series").then(r => r.json()).then(data => {
  if (!data.rows) return;
  const rows = data.rows;
  drawLine(document.getElementById("prices"), rows.map(r => r.close_etf), "#06c");
  drawLine(document.getElementById("prices"), rows.map(r => r.close_fut), "#c60");
  drawLine(document.getElementById("lots"), rows.map(r => r.hedge_lots), "#090");

  const body = document.querySelector("#tail tbody");
  rows.slice(-10).forEach(r => {
    const tr = document.createElement("tr");
    tr.innerHTML = "<td>" + r.date.slice(0, 10) + "</td><td>" + r.close_etf.toFixed(3) +
      "</td><td>" + r.close_fut.toFixed(3) + "</td><td>" + r.etf_dv01.toFixed(2) +
      "</td><td>" + r.fut_dv01.toFixed(2) + "</td><td>" + r.hedge_lots + "</td>";
    body.appendChild(tr);
  });
});

document.getElementById("whatif").addEventListener("submit", ev => {
  ev.preventDefault();
  const f = new FormData(ev.target);
  const q = new URLSearchParams(f).toString();
  fetch("/api/hedge?" + q).then(r => r.json()).then(m => {
    const out = document.getElementById("result");
    if (m.error) {
      out.className = "error";
      out.textContent = m.error;
      return;
    }
    out.className = "";
    out.textContent = "ETF DV01 " + m.etf_dv01.toFixed(2) +
      " /bp, futures DV01 " + m.fut_dv01.toFixed(2) +
      " /bp, sell " + m.hedge_lots + " contracts";
  });
});
</script>
</body>
</html>`
