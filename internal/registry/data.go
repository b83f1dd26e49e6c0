package registry

// DefaultRegistry returns the built-in Lexer Registry.
func DefaultRegistry() *Registry {
	return NewRegistry([]Entry{
		// C family, all on the cpp lexer
		{Name: "C", Lexer: "cpp"},
		{Name: "C++", Lexer: "cpp"},
		{Name: "Objective-C", Lexer: "cpp"},
		{Name: "Objective-C++", Lexer: "cpp"},
		{Name: "Java", Lexer: "cpp"},
		{Name: "JavaScript", Lexer: "cpp"},
		{Name: "TypeScript", Lexer: "cpp"},
		{Name: "C#", Lexer: "cpp"},
		{Name: "C Sharp", Lexer: "cpp"},
		{Name: "Kotlin", Lexer: "cpp"},
		{Name: "Swift", Lexer: "cpp"},
		{Name: "D", Lexer: "cpp"},
		{Name: "Dart", Lexer: "cpp"},
		{Name: "Scala", Lexer: "cpp"},
		{Name: "Go", Lexer: "cpp"},

		// Scripting languages
		{Name: "Python", Lexer: "python"},
		{Name: "Ruby", Lexer: "ruby"},
		{Name: "Perl", Lexer: "perl"},
		{Name: "Lua", Lexer: "lua"},
		{Name: "Tcl", Lexer: "tcl"},

		// Web technologies
		{Name: "CoffeeScript", Lexer: "coffeescript"},
		{Name: "HTML", Lexer: "hypertext"},
		{Name: "XML", Lexer: "xml"},
		{Name: "CSS", Lexer: "css"},
		{Name: "SCSS", Lexer: "css"},
		{Name: "Sass", Lexer: "css"},
		{Name: "Less", Lexer: "css"},
		{Name: "JSON", Lexer: "json"},
		{Name: "YAML", Lexer: "yaml"},
		{Name: "TOML", Lexer: "toml"},

		// Systems programming
		{Name: "Rust", Lexer: "rust"},
		{Name: "Zig", Lexer: "zig"},
		{Name: "Nim", Lexer: "nim"},

		// Functional languages
		{Name: "Haskell", Lexer: "haskell"},
		{Name: "Clojure", Lexer: "clojure"},
		{Name: "Erlang", Lexer: "erlang"},
		{Name: "Elixir", Lexer: "elixir"},
		{Name: "F#", Lexer: "fsharp"},
		{Name: "OCaml", Lexer: "ocaml"},
		{Name: "Standard ML", Lexer: "sml"},

		// Classical languages
		{Name: "Julia", Lexer: "julia"},

		// Shell/Batch
		{Name: "Shell", Lexer: "bash"},
		{Name: "Bash", Lexer: "bash"},
		{Name: "PowerShell", Lexer: "powershell"},
		{Name: "Batchfile", Lexer: "batch"},
		{Name: "Makefile", Lexer: "makefile"},

		// Database
		{Name: "SQL", Lexer: "sql"},
		{Name: "MySQL", Lexer: "sql"},
		{Name: "PostgreSQL", Lexer: "sql"},
		{Name: "PL/SQL", Lexer: "sql"},

		// Data formats
		{Name: "CSV", Lexer: "csv"},
		{Name: "TSV", Lexer: "csv"},
		{Name: "INI", Lexer: "ini"},
		{Name: "Properties", Lexer: "props"},

		// Configuration
		{Name: "Dockerfile", Lexer: "dockerfile"},
		{Name: "CMake", Lexer: "cmake"},
		{Name: "Meson", Lexer: "meson"},

		// Documentation
		{Name: "Markdown", Lexer: "markdown"},
		{Name: "reStructuredText", Lexer: "rest"},
		{Name: "LaTeX", Lexer: "latex"},
		{Name: "TeX", Lexer: "latex"},

		// Other languages
		{Name: "R", Lexer: "r"},
		{Name: "MATLAB", Lexer: "matlab"},
		{Name: "Mathematica", Lexer: "mathematica"},
		{Name: "Fortran", Lexer: "fortran"},
		{Name: "COBOL", Lexer: "cobol"},
		{Name: "Pascal", Lexer: "pascal"},
		{Name: "Ada", Lexer: "ada"},
		{Name: "VHDL", Lexer: "vhdl"},
		{Name: "Verilog", Lexer: "verilog"},

		// Assembly
		{Name: "Assembly", Lexer: "asm"},
		{Name: "NASM", Lexer: "asm"},

		// Windows Registry files
		{Name: "Windows Registry", Lexer: "registry"},

		// Specialized
		{Name: "Diff", Lexer: "diff"},
		{Name: "Patch", Lexer: "diff"},
		{Name: "Log", Lexer: "log"},
		{Name: "HTTP", Lexer: "http"},
		{Name: "GraphQL", Lexer: "graphql"},
	}...)
}

// DefaultKeywords returns the built-in Keyword Catalog.
func DefaultKeywords() *KeywordCatalog {
	return NewKeywordCatalog(map[LexerID]WordLists{
		"python": {
			"and as assert async await break class continue def del elif else except finally for from global if import in is lambda None not or pass raise return try while with yield True False",
		},
		"rust": {
			"as break const continue crate dyn else enum extern false fn for if impl in let loop match mod move mut pub ref return self Self static struct super trait true type unsafe use where while",
		},
		"cpp": {
			"and and_eq asm auto bitand bitor bool break case catch char class compl const const_cast continue default delete do double dynamic_cast else enum explicit export extern false float for friend goto if inline int long mutable namespace new not not_eq operator or or_eq private protected public register reinterpret_cast return short signed sizeof static static_cast struct switch template this throw true try typedef typeid typename union unsigned using virtual void volatile wchar_t while xor xor_eq",
			"class public private protected virtual override final new delete this template typename namespace using try catch throw noexcept constexpr nullptr static_cast dynamic_cast const_cast reinterpret_cast explicit friend mutable operator",
		},
		"javascript": {
			"break case catch class const continue debugger default delete do else export extends finally for function if import in instanceof let new return super switch this throw try typeof var void while with yield await async",
		},
		"java": {
			"abstract assert boolean break byte case catch char class const continue default do double else enum extends final finally float for goto if implements import instanceof int interface long native new package private protected public return short static strictfp super switch synchronized this throw throws transient try void volatile while",
		},
		"csharp": {
			"abstract as base bool break byte case catch char checked class const continue decimal default delegate do double else enum event explicit extern false finally fixed float for foreach goto if implicit in int interface internal is lock long namespace new null object operator out override params private protected public readonly ref return sbyte sealed short sizeof stackalloc static string struct switch this throw true try typeof uint ulong unchecked unsafe ushort using virtual void volatile while",
		},
		"go": {
			"break case chan const continue default defer else fallthrough for func go goto if import interface map package range return select struct switch type var",
		},
		"ruby": {
			"BEGIN END alias and begin break case class def defined? do else elsif end ensure false for if in module next nil not or redo rescue retry return self super then true undef unless until when while yield",
		},
		"php": {
			"abstract and array as break callable case catch class clone const continue declare default die do echo else elseif empty enddeclare endfor endforeach endif endswitch endwhile extends final finally for foreach function global goto if implements include include_once instanceof insteadof interface isset list namespace new or print private protected public require require_once return static switch throw trait try unset use var while xor yield",
		},
		"sql": {
			"select from where and or not in is null as order by group having join left right inner outer on union all distinct count sum avg min max",
		},
		"html": {
			"html head body div span p a img br hr ul ol li table tr td th form input button select textarea label script style link meta title h1 h2 h3 h4 h5 h6 nav header footer section article aside main",
		},
		"css": {
			"color background font margin padding border width height display position top left right bottom float clear text-align vertical-align line-height font-size font-family font-weight overflow visibility z-index opacity transform transition animation flex grid justify-content align-items",
		},
		"bash": {
			"if then else elif fi case esac for while until do done in function select time coproc",
		},
		"powershell": {
			"begin break catch class continue data define do dynamicparam else elseif end exit filter finally for foreach from function if in inlineScript parallel param process return switch throw trap try until where while workflow",
		},
		"lua": {
			"and break do else elseif end false for function goto if in local nil not or repeat return then true until while",
		},
		"perl": {
			"if else elsif unless while until for foreach do last next redo goto return sub package use require BEGIN END my local our",
		},
		"r": {
			"if else repeat while function for in next break TRUE FALSE NULL NA Inf NaN",
		},
		"matlab": {
			"break case catch classdef continue else elseif end for function global if otherwise parfor persistent return spmd switch try while",
		},
		"scala": {
			"abstract case catch class def do else extends false final finally for forSome if implicit import lazy match new null object override package private protected return sealed super this throw trait try true type val var while with yield",
		},
		"kotlin": {
			"as break class continue do else false for fun if in interface is null object package return super this throw true try type val var when while",
		},
		"swift": {
			"as break case catch class continue default defer do else enum extension fallthrough false for func guard if import in init internal let nil private protocol public repeat return self static struct subscript super switch throw true try type var where while",
		},
		"dart": {
			"as assert async await break case catch class const continue default do else enum extends false final finally for get if implements import in interface is library new null operator part rethrow return set static super switch sync this throw true try typedef var void while with yield",
		},
		"julia": {
			"abstract break case catch const continue do else elseif end export finally for function global if import let local macro module quote return struct try type using while",
		},
		"haskell": {
			"case class data default deriving do else if import in infix infixl infixr instance let module newtype of then type where",
		},
		"clojure": {
			"def defmacro defn defstruct deftype defprotocol defrecord ns import use require if do let loop recur when when-not when-let when-first for doseq dotimes and or not",
		},
		"erlang": {
			"after and andalso band begin bnot bor bsl bsr bxor case catch cond div end fun if let not of or orelse query receive rem try when xor",
		},
		"fortran": {
			"program module subroutine function end use implicit none integer real character logical dimension parameter common equivalence data save allocate deallocate",
		},
		"pascal": {
			"and array as begin case class const constructor destructor div do downto else end except finally for function goto if implementation in inherited interface is mod not object of on or packed procedure program property raise record repeat set shl shr then to try type unit until uses var while with xor",
		},
		"ada": {
			"abort abs abstract accept access aliased all and array at begin body case constant declare delay delta digits do else elsif end entry exception exit for function generic goto if in interface is limited loop mod new not null of or others out overriding package pragma private procedure protected raise range record rem renames requeue return reverse select separate some subtype synchronized tagged task terminate then type until use when while with xor",
		},
		"vhdl": {
			"abs access after alias all and architecture array assert attribute begin block body buffer bus case component configuration constant disconnect downto else elsif end entity exit file for function generate generic group guarded if impure in inertial inout is label library linkage literal loop map mod nand new next nor not null of on open or others out package port postponed procedure process pure range record register reject rem report return rol ror select severity signal shared sla sll sra srl subtype then to transport type unaffected units until use variable wait when while with xnor xor",
		},
		"verilog": {
			"always and assign automatic begin buf bufif0 bufif1 case casex casez cell cmos config deassign default defparam design disable edge else end endcase endconfig endfunction endgenerate endmodule endprimitive endspecify endtable endtask event for force forever fork function generate genvar highz0 highz1 if ifnone incdir include initial inout input instance join large liblist library localparam macromodule medium module nand negedge nmos nor noshowcancelled not notif0 notif1 or output parameter pmos posedge primitive pull0 pull1 pulldown pullup pulsestyle_ondetect pulsestyle_onevent rcmos real realtime reg release repeat rnmos rpmos rtran rtranif0 rtranif1 scalared showcancelled signed small specify specparam strong0 strong1 supply0 supply1 supply1 table task time tran tranif0 tranif1 tri tri0 tri1 triand trior trireg use uwire vectored wait wand weak0 weak1 while wire wor xnor xor",
		},
		"registry": {
			"HKEY_CLASSES_ROOT HKEY_CURRENT_USER HKEY_LOCAL_MACHINE HKEY_USERS HKEY_CURRENT_CONFIG REG_SZ REG_DWORD REG_BINARY REG_MULTI_SZ REG_EXPAND_SZ REG_NONE REG_QWORD REG_DWORD_BIG_ENDIAN REG_LINK REG_RESOURCE_LIST REG_FULL_RESOURCE_DESCRIPTOR REG_RESOURCE_REQUIREMENTS_LIST REG_QWORD_LITTLE_ENDIAN DELETE READ_CONTROL WRITE_DAC WRITE_OWNER",
		},
	})
}
