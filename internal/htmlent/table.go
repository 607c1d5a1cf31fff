package htmlent

// html40Entities is sorted by code point.
var html40Entities = [...]Entity{
	{Name: "quot", Value: 0x0022},
	{Name: "amp", Value: 0x0026},
	{Name: "apos", Value: 0x0027},
	{Name: "lt", Value: 0x003C},
	{Name: "gt", Value: 0x003E},
	{Name: "nbsp", Value: 0x00A0},
	{Name: "iexcl", Value: 0x00A1},
	{Name: "cent", Value: 0x00A2},
	{Name: "pound", Value: 0x00A3},
	{Name: "curren", Value: 0x00A4},
	{Name: "yen", Value: 0x00A5},
	{Name: "brvbar", Value: 0x00A6},
	{Name: "sect", Value: 0x00A7},
	{Name: "uml", Value: 0x00A8},
	{Name: "copy", Value: 0x00A9},
	{Name: "ordf", Value: 0x00AA},
	{Name: "laquo", Value: 0x00AB},
	{Name: "not", Value: 0x00AC},
	{Name: "shy", Value: 0x00AD},
	{Name: "reg", Value: 0x00AE},
	{Name: "macr", Value: 0x00AF},
	{Name: "deg", Value: 0x00B0},
	{Name: "plusmn", Value: 0x00B1},
	{Name: "sup2", Value: 0x00B2},
	{Name: "sup3", Value: 0x00B3},
	{Name: "acute", Value: 0x00B4},
	{Name: "micro", Value: 0x00B5},
	{Name: "para", Value: 0x00B6},
	{Name: "middot", Value: 0x00B7},
	{Name: "cedil", Value: 0x00B8},
	{Name: "sup1", Value: 0x00B9},
	{Name: "ordm", Value: 0x00BA},
	{Name: "raquo", Value: 0x00BB},
	{Name: "frac14", Value: 0x00BC},
	{Name: "frac12", Value: 0x00BD},
	{Name: "frac34", Value: 0x00BE},
	{Name: "iquest", Value: 0x00BF},
	{Name: "Agrave", Value: 0x00C0},
	{Name: "Aacute", Value: 0x00C1},
	{Name: "Acirc", Value: 0x00C2},
	{Name: "Atilde", Value: 0x00C3},
	{Name: "Auml", Value: 0x00C4},
	{Name: "Aring", Value: 0x00C5},
	{Name: "AElig", Value: 0x00C6},
	{Name: "Ccedil", Value: 0x00C7},
	{Name: "Egrave", Value: 0x00C8},
	{Name: "Eacute", Value: 0x00C9},
	{Name: "Ecirc", Value: 0x00CA},
	{Name: "Euml", Value: 0x00CB},
	{Name: "Igrave", Value: 0x00CC},
	{Name: "Iacute", Value: 0x00CD},
	{Name: "Icirc", Value: 0x00CE},
	{Name: "Iuml", Value: 0x00CF},
	{Name: "ETH", Value: 0x00D0},
	{Name: "Ntilde", Value: 0x00D1},
	{Name: "Ograve", Value: 0x00D2},
	{Name: "Oacute", Value: 0x00D3},
	{Name: "Ocirc", Value: 0x00D4},
	{Name: "Otilde", Value: 0x00D5},
	{Name: "Ouml", Value: 0x00D6},
	{Name: "times", Value: 0x00D7},
	{Name: "Oslash", Value: 0x00D8},
	{Name: "Ugrave", Value: 0x00D9},
	{Name: "Uacute", Value: 0x00DA},
	{Name: "Ucirc", Value: 0x00DB},
	{Name: "Uuml", Value: 0x00DC},
	{Name: "Yacute", Value: 0x00DD},
	{Name: "THORN", Value: 0x00DE},
	{Name: "szlig", Value: 0x00DF},
	{Name: "agrave", Value: 0x00E0},
	{Name: "aacute", Value: 0x00E1},
	{Name: "acirc", Value: 0x00E2},
	{Name: "atilde", Value: 0x00E3},
	{Name: "auml", Value: 0x00E4},
	{Name: "aring", Value: 0x00E5},
	{Name: "aelig", Value: 0x00E6},
	{Name: "ccedil", Value: 0x00E7},
	{Name: "egrave", Value: 0x00E8},
	{Name: "eacute", Value: 0x00E9},
	{Name: "ecirc", Value: 0x00EA},
	{Name: "euml", Value: 0x00EB},
	{Name: "igrave", Value: 0x00EC},
	{Name: "iacute", Value: 0x00ED},
	{Name: "icirc", Value: 0x00EE},
	{Name: "iuml", Value: 0x00EF},
	{Name: "eth", Value: 0x00F0},
	{Name: "ntilde", Value: 0x00F1},
	{Name: "ograve", Value: 0x00F2},
	{Name: "oacute", Value: 0x00F3},
	{Name: "ocirc", Value: 0x00F4},
	{Name: "otilde", Value: 0x00F5},
	{Name: "ouml", Value: 0x00F6},
	{Name: "divide", Value: 0x00F7},
	{Name: "oslash", Value: 0x00F8},
	{Name: "ugrave", Value: 0x00F9},
	{Name: "uacute", Value: 0x00FA},
	{Name: "ucirc", Value: 0x00FB},
	{Name: "uuml", Value: 0x00FC},
	{Name: "yacute", Value: 0x00FD},
	{Name: "thorn", Value: 0x00FE},
	{Name: "yuml", Value: 0x00FF},
	{Name: "OElig", Value: 0x0152},
	{Name: "oelig", Value: 0x0153},
	{Name: "Scaron", Value: 0x0160},
	{Name: "scaron", Value: 0x0161},
	{Name: "Yuml", Value: 0x0178},
	{Name: "fnof", Value: 0x0192},
	{Name: "circ", Value: 0x02C6},
	{Name: "tilde", Value: 0x02DC},
	{Name: "Alpha", Value: 0x0391},
	{Name: "Beta", Value: 0x0392},
	{Name: "Gamma", Value: 0x0393},
	{Name: "Delta", Value: 0x0394},
	{Name: "Epsilon", Value: 0x0395},
	{Name: "Zeta", Value: 0x0396},
	{Name: "Eta", Value: 0x0397},
	{Name: "Theta", Value: 0x0398},
	{Name: "Iota", Value: 0x0399},
	{Name: "Kappa", Value: 0x039A},
	{Name: "Lambda", Value: 0x039B},
	{Name: "Mu", Value: 0x039C},
	{Name: "Nu", Value: 0x039D},
	{Name: "Xi", Value: 0x039E},
	{Name: "Omicron", Value: 0x039F},
	{Name: "Pi", Value: 0x03A0},
	{Name: "Rho", Value: 0x03A1},
	{Name: "Sigma", Value: 0x03A3},
	{Name: "Tau", Value: 0x03A4},
	{Name: "Upsilon", Value: 0x03A5},
	{Name: "Phi", Value: 0x03A6},
	{Name: "Chi", Value: 0x03A7},
	{Name: "Psi", Value: 0x03A8},
	{Name: "Omega", Value: 0x03A9},
	{Name: "alpha", Value: 0x03B1},
	{Name: "beta", Value: 0x03B2},
	{Name: "gamma", Value: 0x03B3},
	{Name: "delta", Value: 0x03B4},
	{Name: "epsilon", Value: 0x03B5},
	{Name: "zeta", Value: 0x03B6},
	{Name: "eta", Value: 0x03B7},
	{Name: "theta", Value: 0x03B8},
	{Name: "iota", Value: 0x03B9},
	{Name: "kappa", Value: 0x03BA},
	{Name: "lambda", Value: 0x03BB},
	{Name: "mu", Value: 0x03BC},
	{Name: "nu", Value: 0x03BD},
	{Name: "xi", Value: 0x03BE},
	{Name: "omicron", Value: 0x03BF},
	{Name: "pi", Value: 0x03C0},
	{Name: "rho", Value: 0x03C1},
	{Name: "sigmaf", Value: 0x03C2},
	{Name: "sigma", Value: 0x03C3},
	{Name: "tau", Value: 0x03C4},
	{Name: "upsilon", Value: 0x03C5},
	{Name: "phi", Value: 0x03C6},
	{Name: "chi", Value: 0x03C7},
	{Name: "psi", Value: 0x03C8},
	{Name: "omega", Value: 0x03C9},
	{Name: "thetasym", Value: 0x03D1},
	{Name: "upsih", Value: 0x03D2},
	{Name: "piv", Value: 0x03D6},
	{Name: "ensp", Value: 0x2002},
	{Name: "emsp", Value: 0x2003},
	{Name: "thinsp", Value: 0x2009},
	{Name: "zwnj", Value: 0x200C},
	{Name: "zwj", Value: 0x200D},
	{Name: "lrm", Value: 0x200E},
	{Name: "rlm", Value: 0x200F},
	{Name: "ndash", Value: 0x2013},
	{Name: "mdash", Value: 0x2014},
	{Name: "lsquo", Value: 0x2018},
	{Name: "rsquo", Value: 0x2019},
	{Name: "sbquo", Value: 0x201A},
	{Name: "ldquo", Value: 0x201C},
	{Name: "rdquo", Value: 0x201D},
	{Name: "bdquo", Value: 0x201E},
	{Name: "dagger", Value: 0x2020},
	{Name: "Dagger", Value: 0x2021},
	{Name: "bull", Value: 0x2022},
	{Name: "hellip", Value: 0x2026},
	{Name: "permil", Value: 0x2030},
	{Name: "prime", Value: 0x2032},
	{Name: "Prime", Value: 0x2033},
	{Name: "lsaquo", Value: 0x2039},
	{Name: "rsaquo", Value: 0x203A},
	{Name: "oline", Value: 0x203E},
	{Name: "frasl", Value: 0x2044},
	{Name: "euro", Value: 0x20AC},
	{Name: "image", Value: 0x2111},
	{Name: "weierp", Value: 0x2118},
	{Name: "real", Value: 0x211C},
	{Name: "trade", Value: 0x2122},
	{Name: "alefsym", Value: 0x2135},
	{Name: "larr", Value: 0x2190},
	{Name: "uarr", Value: 0x2191},
	{Name: "rarr", Value: 0x2192},
	{Name: "darr", Value: 0x2193},
	{Name: "harr", Value: 0x2194},
	{Name: "crarr", Value: 0x21B5},
	{Name: "lArr", Value: 0x21D0},
	{Name: "uArr", Value: 0x21D1},
	{Name: "rArr", Value: 0x21D2},
	{Name: "dArr", Value: 0x21D3},
	{Name: "hArr", Value: 0x21D4},
	{Name: "forall", Value: 0x2200},
	{Name: "part", Value: 0x2202},
	{Name: "exist", Value: 0x2203},
	{Name: "empty", Value: 0x2205},
	{Name: "nabla", Value: 0x2207},
	{Name: "isin", Value: 0x2208},
	{Name: "notin", Value: 0x2209},
	{Name: "ni", Value: 0x220B},
	{Name: "prod", Value: 0x220F},
	{Name: "sum", Value: 0x2211},
	{Name: "minus", Value: 0x2212},
	{Name: "lowast", Value: 0x2217},
	{Name: "radic", Value: 0x221A},
	{Name: "prop", Value: 0x221D},
	{Name: "infin", Value: 0x221E},
	{Name: "ang", Value: 0x2220},
	{Name: "and", Value: 0x2227},
	{Name: "or", Value: 0x2228},
	{Name: "cap", Value: 0x2229},
	{Name: "cup", Value: 0x222A},
	{Name: "int", Value: 0x222B},
	{Name: "there4", Value: 0x2234},
	{Name: "sim", Value: 0x223C},
	{Name: "cong", Value: 0x2245},
	{Name: "asymp", Value: 0x2248},
	{Name: "ne", Value: 0x2260},
	{Name: "equiv", Value: 0x2261},
	{Name: "le", Value: 0x2264},
	{Name: "ge", Value: 0x2265},
	{Name: "sub", Value: 0x2282},
	{Name: "sup", Value: 0x2283},
	{Name: "nsub", Value: 0x2284},
	{Name: "sube", Value: 0x2286},
	{Name: "supe", Value: 0x2287},
	{Name: "oplus", Value: 0x2295},
	{Name: "otimes", Value: 0x2297},
	{Name: "perp", Value: 0x22A5},
	{Name: "sdot", Value: 0x22C5},
	{Name: "lceil", Value: 0x2308},
	{Name: "rceil", Value: 0x2309},
	{Name: "lfloor", Value: 0x230A},
	{Name: "rfloor", Value: 0x230B},
	{Name: "lang", Value: 0x2329},
	{Name: "rang", Value: 0x232A},
	{Name: "loz", Value: 0x25CA},
	{Name: "spades", Value: 0x2660},
	{Name: "clubs", Value: 0x2663},
	{Name: "hearts", Value: 0x2665},
	{Name: "diams", Value: 0x2666},
}
