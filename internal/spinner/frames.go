package spinner

// frames is the sweep shown on the remote's status line. The marker runs
// from column 0 to 17 and back; column 18 is always blank.
var frames = [frameCount]string{
	"o                  ",
	" o                 ",
	"  o                ",
	"   o               ",
	"    o              ",
	"     o             ",
	"      o            ",
	"       o           ",
	"        o          ",
	"         o         ",
	"          o        ",
	"           o       ",
	"            o      ",
	"             o     ",
	"              o    ",
	"               o   ",
	"                o  ",
	"                 o ",
	"                o  ",
	"               o   ",
	"              o    ",
	"             o     ",
	"            o      ",
	"           o       ",
	"          o        ",
	"         o         ",
	"        o          ",
	"       o           ",
	"      o            ",
	"     o             ",
	"    o              ",
	"   o               ",
	"  o                ",
}
