package phases

import (
	"os"

	"github.com/macaudit/macaudit/internal/acquire"
	"github.com/macaudit/macaudit/internal/app/ui"
	"github.com/macaudit/macaudit/internal/ledger"
	"github.com/macaudit/macaudit/internal/messages"
)

// displayTestHTML is a full-screen test pattern: press any key to cycle
// through solid panels that make dead pixels, bright spots and backlight
// stains visible. Esc closes the tab.
const displayTestHTML = `<!doctype html>
<html><head><title>Display test</title><style>
  html,body{margin:0;height:100%;cursor:none}
  #p{height:100%;display:flex;align-items:center;justify-content:center;
     color:#888;font:16px sans-serif}
</style></head>
<body><div id="p">Press any key to cycle colors. Look for dead pixels, lines and stains.</div>
<script>
  var colors=["#ffffff","#000000","#ff0000","#00ff00","#0000ff","#808080"],i=-1,p=document.getElementById("p");
  document.addEventListener("keydown",function(ev){
    if(ev.key==="Escape"){window.close();return}
    i=(i+1)%colors.length;p.textContent="";document.body.style.background=colors[i];
  });
  document.documentElement.requestFullscreen&&document.addEventListener("click",function(){document.documentElement.requestFullscreen()});
</script></body></html>
`

// runGraphics inventories the GPU and walks the operator through a visual
// panel check. The machine cannot judge its own screen; the operator's eyes
// are the instrument here.
func runGraphics(e *Env) {
	chipset := acquire.ExtractField(e.Cache.Get(acquire.SourceGraphics), "Chipset Model")
	if chipset != "" {
		e.Record(ledger.SeverityInfo, "Graphics: "+chipset)
	} else {
		e.Record(ledger.SeverityInfo, "Graphics inventory unavailable")
	}

	answer, err := e.Term.Confirm(messages.GetUIMessage("AskDisplayTest"))
	if err != nil || answer != ui.AnswerYes {
		e.Manual("Show full-screen white, black and primary colors; look for dead pixels, lines and backlight stains")
		return
	}

	f, err := os.CreateTemp("", "macaudit-display-*.html")
	if err != nil {
		e.Record(ledger.SeverityInfo, "Could not stage the display test page")
		e.Manual("Show full-screen white, black and primary colors; look for dead pixels, lines and backlight stains")
		return
	}
	f.WriteString(displayTestHTML)
	f.Close()
	e.Cache.RunQuick("open", f.Name())

	verdict, err := e.Term.Confirm(messages.GetUIMessage("AskDisplayClean"))
	switch {
	case err == nil && verdict == ui.AnswerYes:
		e.Record(ledger.SeverityPass, "Operator confirmed the display panels are clean")
	case err == nil && verdict == ui.AnswerNo:
		e.Record(ledger.SeverityFail, "Operator reported display defects on the test pattern")
	default:
		e.Record(ledger.SeverityInfo, "Display test result was ambiguous")
		e.Manual("Repeat the full-screen color check in good lighting")
	}
}
