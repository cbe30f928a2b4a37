package api

import "net/http"

// Dashboard serves the single-page fraud analysis console. All state lives
// server-side; the page renders what /api/v1 and /ws tell it to.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(dashboardHTML))
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>SecureBank FraudDesk</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        :root {
            --bg: #0b0e14;
            --bg-subtle: #151a23;
            --border: #242b38;
            --text: #f5f7fa;
            --text-secondary: #98a2b3;
            --red: #ef4444;
            --yellow: #eab308;
            --green: #22c55e;
        }
        body {
            font-family: -apple-system, 'Segoe UI', sans-serif;
            background: var(--bg); color: var(--text);
            font-size: 14px; line-height: 1.5; min-height: 100vh;
        }
        .container { max-width: 1100px; margin: 0 auto; padding: 24px; }
        header { border-bottom: 1px solid var(--border); padding: 16px 0; margin-bottom: 24px; }
        header h1 { font-size: 18px; }
        header span { color: var(--text-secondary); font-size: 13px; }
        .grid { display: grid; grid-template-columns: 360px 1fr; gap: 24px; }
        .card { background: var(--bg-subtle); border: 1px solid var(--border); border-radius: 8px; padding: 20px; }
        .card h2 { font-size: 14px; margin-bottom: 16px; color: var(--text-secondary); text-transform: uppercase; letter-spacing: 0.05em; }
        label { display: block; font-size: 12px; color: var(--text-secondary); margin: 12px 0 4px; }
        input, select {
            width: 100%; padding: 8px 10px; border-radius: 6px;
            border: 1px solid var(--border); background: var(--bg); color: var(--text);
        }
        button {
            margin-top: 16px; width: 100%; padding: 10px; border: 0; border-radius: 6px;
            background: #2563eb; color: white; font-weight: 600; cursor: pointer;
        }
        button:disabled { opacity: 0.5; cursor: wait; }
        button.secondary { background: var(--bg); border: 1px solid var(--border); color: var(--text-secondary); }
        .readout { font-size: 64px; font-weight: 700; text-align: center; font-variant-numeric: tabular-nums; }
        .readout-bar { height: 8px; border-radius: 4px; background: var(--bg); overflow: hidden; margin: 12px 0 20px; }
        .readout-bar div { height: 100%; width: 0%; background: var(--green); transition: width 40ms linear; }
        .labels { display: flex; gap: 12px; justify-content: center; margin-bottom: 8px; }
        .pill { padding: 4px 12px; border-radius: 999px; font-size: 12px; font-weight: 600; background: var(--bg); }
        .pill.red { color: var(--red); } .pill.yellow { color: var(--yellow); } .pill.green { color: var(--green); }
        .profile { text-align: center; color: var(--text-secondary); font-size: 12px; margin-top: 8px; }
        table { width: 100%; border-collapse: collapse; margin-top: 8px; }
        th, td { text-align: left; padding: 8px 10px; border-bottom: 1px solid var(--border); font-size: 13px; }
        th { color: var(--text-secondary); font-weight: 500; }
        .status { padding: 2px 8px; border-radius: 4px; font-size: 11px; font-weight: 600; }
        .status.blocked { background: rgba(239,68,68,0.15); color: var(--red); }
        .status.otp-required { background: rgba(234,179,8,0.15); color: var(--yellow); }
        .status.approved { background: rgba(34,197,94,0.15); color: var(--green); }
        .score.red { color: var(--red); } .score.yellow { color: var(--yellow); } .score.green { color: var(--green); }
        .placeholder { color: var(--text-secondary); text-align: center; padding: 24px 0; }
        .count { color: var(--text-secondary); font-size: 12px; float: right; }
    </style>
</head>
<body>
<div class="container">
    <header>
        <h1>SecureBank FraudDesk</h1>
        <span>real-time transaction risk analysis</span>
    </header>
    <div class="grid">
        <div class="card">
            <h2>Analyze Transaction</h2>
            <label>Amount (USD)</label>
            <input id="amount" type="number" min="0" step="0.01" placeholder="0.00">
            <label>Merchant</label>
            <select id="merchant"></select>
            <label>Category</label>
            <select id="category"></select>
            <label>City</label>
            <select id="city"></select>
            <button id="analyze">Analyze</button>
            <button id="reset" class="secondary">Reset</button>
        </div>
        <div>
            <div class="card">
                <h2>Risk Assessment</h2>
                <div class="readout" id="readout">0</div>
                <div class="readout-bar"><div id="bar"></div></div>
                <div class="labels">
                    <span class="pill" id="level">&mdash;</span>
                    <span class="pill" id="decision">&mdash;</span>
                </div>
                <div class="profile">current profile risk: <span id="profile">&mdash;</span></div>
            </div>
            <div class="card" style="margin-top: 24px;">
                <h2>Session History <span class="count" id="count">0 records</span></h2>
                <table>
                    <thead><tr><th>Time</th><th>Merchant</th><th>Amount</th><th>Score</th><th>Decision</th></tr></thead>
                    <tbody id="history"><tr><td colspan="5" class="placeholder">no transactions yet</td></tr></tbody>
                </table>
            </div>
        </div>
    </div>
</div>
<script>
const $ = (id) => document.getElementById(id);

function fill(select, values) {
    select.innerHTML = '';
    for (const v of values) {
        const opt = document.createElement('option');
        opt.value = v; opt.textContent = v;
        select.appendChild(opt);
    }
}

function applyDisplay(d) {
    $('readout').textContent = d.readout;
    $('bar').style.width = d.readout + '%';
    $('bar').style.background = d.level_color ? 'var(--' + d.level_color + ')' : 'var(--green)';
    $('level').textContent = d.risk_level || '—';
    $('decision').textContent = d.decision || '—';
    $('level').className = 'pill ' + (d.level_color || '');
    $('decision').className = 'pill ' + (d.level_color || '');
    $('profile').textContent = d.profile_risk || '—';
    $('profile').style.color = d.profile_color ? 'var(--' + d.profile_color + ')' : '';
}

async function refreshHistory() {
    const res = await fetch('/api/v1/history');
    const data = await res.json();
    $('count').textContent = data.count_label;
    const tbody = $('history');
    if (data.empty) {
        tbody.innerHTML = '<tr><td colspan="5" class="placeholder">no transactions yet</td></tr>';
        return;
    }
    tbody.innerHTML = '';
    for (const e of data.entries) {
        const tr = document.createElement('tr');
        tr.innerHTML = '<td>' + e.time_label + '</td><td>' + e.merchant + '</td>' +
            '<td>$' + e.amount.toFixed(2) + '</td>' +
            '<td class="score ' + e.score_color + '">' + e.risk_score + '</td>' +
            '<td><span class="status ' + e.status_class + '">' + e.decision + '</span></td>';
        tbody.appendChild(tr);
    }
}

async function init() {
    const res = await fetch('/api/v1/options');
    const opts = await res.json();
    fill($('merchant'), opts.merchants);
    fill($('category'), opts.categories);
    fill($('city'), opts.cities);
    await refreshHistory();

    const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
    ws.onmessage = (msg) => {
        const frame = JSON.parse(msg.data);
        applyDisplay(frame.display);
        if (frame.type === 'result') refreshHistory();
    };
}

$('analyze').onclick = async () => {
    $('analyze').disabled = true;
    try {
        await fetch('/api/v1/analyze', {
            method: 'POST',
            headers: {'Content-Type': 'application/json'},
            body: JSON.stringify({
                amount: parseFloat($('amount').value) || 0,
                merchant: $('merchant').value,
                category: $('category').value,
                city: $('city').value,
            }),
        });
    } finally {
        $('analyze').disabled = false;
    }
};

$('reset').onclick = async () => {
    await fetch('/api/v1/reset', {method: 'POST'});
    applyDisplay({readout: 0});
};

init();
</script>
</body>
</html>
`
