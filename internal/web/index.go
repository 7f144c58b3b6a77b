package web

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>chaoscope</title>
<style>
  body { margin: 0; background: #0a0a0a; overflow: hidden; }
  canvas { display: block; }
</style>
</head>
<body>
<canvas id="c"></canvas>
<script>
const canvas = document.getElementById("c");
const ctx = canvas.getContext("2d");

function resize() {
  canvas.width = window.innerWidth;
  canvas.height = window.innerHeight;
}
window.addEventListener("resize", resize);
resize();

const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => {
  const frame = JSON.parse(ev.data);
  const cx = canvas.width / 2, cy = canvas.height / 2;
  const scale = Math.min(canvas.width, canvas.height) / 900;

  ctx.fillStyle = "rgba(10, 10, 10, 0.35)";
  ctx.fillRect(0, 0, canvas.width, canvas.height);

  for (let i = 0; i < frame.bobs.length; i++) {
    const [xa, ya, xb, yb] = frame.bobs[i];
    ctx.strokeStyle = "hsla(" + frame.hues[i] + ", 90%, 60%, 0.25)";
    ctx.beginPath();
    ctx.moveTo(cx, cy);
    ctx.lineTo(cx + xa * scale, cy - ya * scale);
    ctx.lineTo(cx + xb * scale, cy - yb * scale);
    ctx.stroke();
  }
};
</script>
</body>
</html>
`
