// Package kvconf reads flat key-value configuration from command-line
// arguments and configuration files, and interprets values on demand.
//
// Quick Start:
//
//	cfg := kvconf.New()
//	if err := cfg.InitFromArgs(os.Args); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.InitFromFile("app.conf"); err != nil {
//	    log.Fatal(err)
//	}
//
//	port, err := cfg.GetUInt("port")
//	weights, found, err := cfg.ParseListDouble("weights")
//
// Arguments are "key=value" or "--option". File lines are "key=value",
// blank, or comments starting with '#'. A file loaded after the arguments
// overrides them for the keys it sets.
//
// Values are stored verbatim and read through typed accessors (GetUInt,
// GetDouble, GetBool, GetString) or grammars:
//
//	"{5, 4, 3}"   list, see ParseListInt, ParseListDouble, ParseListString
//	"1:2:9"       linear sequence, see ParseSequenceUInt, ParseSequenceDouble
//	"2*2:20"      exponential sequence, see ParseSequenceDouble
//
// AllowKey and AllowOption switch on key checking. Dump and CreateSnapshot
// export the store.
//
// See example_test.go for detailed usage.
package kvconf
