package domain

// CompletionCategory classifies a completion entry
type CompletionCategory string

const (
	CompletionKeyword  CompletionCategory = "keyword"
	CompletionFunction CompletionCategory = "function"
	CompletionOperator CompletionCategory = "operator"
	CompletionValue    CompletionCategory = "value"
	CompletionSnippet  CompletionCategory = "snippet"
)

// CompletionItem is a static keyword or snippet for the Clarity language.
// InsertTemplate uses ${n:placeholder} tab stops.
type CompletionItem struct {
	Trigger        string
	Category       CompletionCategory
	InsertTemplate string
	Doc            string
}

// Completions is the keyword and snippet table offered to editors
var Completions = []CompletionItem{
	// definitions
	{"define-public", CompletionKeyword, "(define-public (${1:function-name} (${2:param1} ${3:param-type}))\n  ${4:; body}\n)", "Define a public function"},
	{"define-private", CompletionKeyword, "(define-private (${1:function-name} (${2:param1} ${3:param-type}))\n  ${4:; body}\n)", "Define a private function"},
	{"define-read-only", CompletionKeyword, "(define-read-only (${1:function-name} (${2:param1} ${3:param-type}))\n  ${4:; body}\n)", "Define a read-only function"},
	{"define-trait", CompletionKeyword, "(define-trait ${1:trait-name}\n  (${2:function-name} (${3:param1} ${4:param-type}) ${5:return-type})\n)", "Define a trait"},
	{"define-fungible-token", CompletionKeyword, "(define-fungible-token ${1:token-name}", "Define a fungible token"},
	{"define-non-fungible-token", CompletionKeyword, "(define-non-fungible-token ${1:token-name}", "Define a non-fungible token"},
	{"define-constant", CompletionKeyword, "(define-constant ${1:CONSTANT-NAME} ${2:value})", "Define a constant value"},
	{"define-map", CompletionKeyword, "(define-map ${1:map-name} ${2:key-type} ${3:value-type})", "Define a map"},

	// control flow
	{"if", CompletionKeyword, "(if ${1:condition}\n  ${2:then-expression}\n  ${3:else-expression}\n)", "Conditional expression"},
	{"when", CompletionKeyword, "(when ${1:condition}\n  ${2:then-expression}\n)", "Conditional expression without else"},
	{"match", CompletionKeyword, "(match ${1:value}\n  ${2:pattern1} ${3:expression1}\n  ${4:pattern2} ${5:expression2}\n)", "Pattern matching"},

	// iteration
	{"map", CompletionFunction, "(map ${1:function} ${2:list})", "Apply function to each element in list"},
	{"filter", CompletionFunction, "(filter ${1:function} ${2:list})", "Filter list based on predicate"},
	{"fold", CompletionFunction, "(fold ${1:function} ${2:initial} ${3:list})", "Reduce list to single value"},

	// arithmetic
	{"+", CompletionOperator, "(+ ${1:num1} ${2:num2})", "Addition"},
	{"-", CompletionOperator, "(- ${1:num1} ${2:num2})", "Subtraction"},
	{"*", CompletionOperator, "(* ${1:num1} ${2:num2})", "Multiplication"},
	{"/", CompletionOperator, "(/ ${1:num1} ${2:num2})", "Division"},
	{"mod", CompletionOperator, "(mod ${1:num1} ${2:num2})", "Modulo"},
	{"pow", CompletionOperator, "(pow ${1:base} ${2:exponent})", "Power"},

	// comparison
	{"=", CompletionOperator, "(= ${1:val1} ${2:val2})", "Equality"},
	{"!=", CompletionOperator, "(!= ${1:val1} ${2:val2})", "Inequality"},
	{"<", CompletionOperator, "(< ${1:val1} ${2:val2})", "Less than"},
	{"<=", CompletionOperator, "(<= ${1:val1} ${2:val2})", "Less than or equal"},
	{">", CompletionOperator, "(> ${1:val1} ${2:val2})", "Greater than"},
	{">=", CompletionOperator, "(>= ${1:val1} ${2:val2})", "Greater than or equal"},

	// boolean
	{"and", CompletionOperator, "(and ${1:expr1} ${2:expr2})", "Logical AND"},
	{"or", CompletionOperator, "(or ${1:expr1} ${2:expr2})", "Logical OR"},
	{"not", CompletionOperator, "(not ${1:expression})", "Logical NOT"},

	// strings
	{"concat", CompletionFunction, "(concat ${1:string1} ${2:string2})", "Concatenate strings or lists"},
	{"str-len", CompletionFunction, "(str-len ${1:string})", "Get string length"},
	{"str-to-int", CompletionFunction, "(str-to-int ${1:string})", "Convert string to integer"},
	{"int-to-str", CompletionFunction, "(int-to-str ${1:integer})", "Convert integer to string"},
	{"string-ascii", CompletionKeyword, "string-ascii", "ASCII string type"},
	{"string-utf8", CompletionKeyword, "string-utf8", "UTF-8 string type"},

	// lists
	{"list", CompletionFunction, "(list ${1:item1} ${2:item2})", "Create a list"},
	{"len", CompletionFunction, "(len ${1:list})", "Get list length"},
	{"append", CompletionFunction, "(append ${1:list} ${2:item})", "Append item to list"},

	// responses and optionals
	{"ok", CompletionValue, "ok", "Ok response type"},
	{"err", CompletionValue, "(err ${1:error-code})", "Error response type"},
	{"some", CompletionValue, "(some ${1:value})", "Some optional value"},
	{"none", CompletionValue, "none", "None optional value"},
	{"print", CompletionFunction, "(print ${1:value})", "Print value to console/emit event"},

	// unwrapping
	{"try!", CompletionFunction, "(try! ${1:optional-or-response})", "Unwrap optional or response, exit on none/err"},
	{"unwrap!", CompletionFunction, "(unwrap! ${1:optional-value} ${2:error-value})", "Unwrap optional value or return error"},
	{"unwrap-panic", CompletionFunction, "(unwrap-panic ${1:optional-value})", "Unwrap optional value or panic"},
	{"unwrap-err!", CompletionFunction, "(unwrap-err! ${1:response-value} ${2:error-value})", "Unwrap response value or return error"},
	{"unwrap-err-panic", CompletionFunction, "(unwrap-err-panic ${1:response-value})", "Unwrap response value or panic"},

	// type checks
	{"is-ok", CompletionFunction, "(is-ok ${1:response-value})", "Check if response is ok"},
	{"is-err", CompletionFunction, "(is-err ${1:response-value})", "Check if response is error"},
	{"is-some", CompletionFunction, "(is-some ${1:optional-value})", "Check if optional has value"},
	{"is-none", CompletionFunction, "(is-none ${1:optional-value})", "Check if optional is none"},

	// tuples
	{"merge", CompletionFunction, "(merge ${1:tuple1} ${2:tuple2})", "Merge two tuples, second overwrites first"},
	{"get", CompletionFunction, "(get ${1:field-name} ${2:tuple})", "Get field value from tuple"},
	{"is-eq", CompletionFunction, "(is-eq ${1:value1} ${2:value2})", "Check if two values are equal"},
	{"asserts!", CompletionFunction, "(asserts! ${1:condition} ${2:error-code})", "Assert condition or return error"},

	// STX and principals
	{"stx-transfer?", CompletionFunction, "(stx-transfer? ${1:amount} ${2:sender} ${3:recipient})", "Transfer STX tokens (returns response)"},
	{"stx-get-balance", CompletionFunction, "(stx-get-balance ${1:account})", "Get STX balance of account"},
	{"as-contract", CompletionFunction, "(as-contract ${1:expression})", "Execute expression as contract"},
	{"contract-caller", CompletionFunction, "contract-caller", "Get contract caller principal"},
	{"tx-sender", CompletionFunction, "tx-sender", "Get transaction sender principal"},

	// defaults
	{"default-to", CompletionFunction, "(default-to ${1:default-value} ${2:optional-value})", "Get value from optional or return default"},
	{"expects!", CompletionFunction, "(expects! ${1:optional-value} ${2:error-code})", "Expect optional to have value or return error"},
	{"expects-err!", CompletionFunction, "(expects-err! ${1:response-value} ${2:error-code})", "Expect response to be error or return error"},

	// maps
	{"map-get", CompletionFunction, "(map-get? ${1:map-name} ${2:key})", "Get value from map (returns optional)"},
	{"map-set", CompletionFunction, "(map-set ${1:map-name} ${2:key} ${3:value})", "Set value in map (overwrites existing)"},
	{"map-insert", CompletionFunction, "(map-insert ${1:map-name} ${2:key} ${3:value})", "Insert value in map (fails if key exists)"},
	{"map-delete", CompletionFunction, "(map-delete ${1:map-name} ${2:key})", "Delete key from map"},

	{"comment", CompletionSnippet, ";; ${1:comment}", "Add a comment"},
}
