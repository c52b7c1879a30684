package codepage

// Page contents are versioned data: membership and ordering are load-bearing.
// Every page keeps code 0 as the string terminator / padding value, and all
// real entries are strictly increasing by Unicode code point. Changing any of
// this breaks previously stored packed values.

// Tag 0000: U+0020..U+005F excepting the backslash.
var latinUpperRunes = []rune{
	0, ' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.',
	'/', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>',
	'?', '@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N',
	'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', ']', '^', '_',
}

// Tag 0001: the end of basic Latin (U+0061..U+007E), seven punctuators and
// superscripts from the Latin-1 supplement, 23 precomposed Latin-1 letters
// covering the largest language groups (French, German, Portuguese, Spanish,
// Turkish), and three Latin-extended-A characters finishing off Turkish.
var latinLowerRunes = []rune{
	0,
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p',
	'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~',
	'§', '«', '¬', '²', '³', '¹', '»',
	'à', 'á', 'â', 'ã', 'ä', 'ç', 'è', 'é', 'ê', 'ë', 'í', 'î', 'ï',
	'ñ', 'ó', 'ô', 'õ', 'ö', 'ù', 'ú', 'û', 'ü', 'ÿ',
	'ğ', 'ı', 'ş',
}

// Tag 0011: upper and lowercase Greek in code-point order from U+0386..U+03CE,
// stressed forms included, diaeresis forms omitted.
var greekRunes = []rune{
	0,
	'Ά', 'Έ', 'Ή', 'Ί', 'Ό', 'Ύ', 'Ώ',
	'Α', 'Β', 'Γ', 'Δ', 'Ε', 'Ζ', 'Η', 'Θ', 'Ι', 'Κ', 'Λ', 'Μ', 'Ν', 'Ξ', 'Ο', 'Π',
	'Ρ', 'Σ', 'Τ', 'Υ', 'Φ', 'Χ', 'Ψ', 'Ω',
	'ά', 'έ', 'ή', 'ί',
	'α', 'β', 'γ', 'δ', 'ε', 'ζ', 'η', 'θ', 'ι', 'κ', 'λ', 'μ', 'ν', 'ξ', 'ο', 'π',
	'ρ', 'ς', 'σ', 'τ', 'υ', 'φ', 'χ', 'ψ', 'ω',
	'ό', 'ύ', 'ώ',
}

// Tag 0100: U+0410..U+044F excepting the lowercase hard sign U+044A.
var cyrillicRunes = []rune{
	0, 'А', 'Б', 'В', 'Г', 'Д', 'Е', 'Ж', 'З', 'И', 'Й', 'К', 'Л', 'М', 'Н', 'О',
	'П', 'Р', 'С', 'Т', 'У', 'Ф', 'Х', 'Ц', 'Ч', 'Ш', 'Щ', 'Ъ', 'Ы', 'Ь', 'Э', 'Ю',
	'Я', 'а', 'б', 'в', 'г', 'д', 'е', 'ж', 'з', 'и', 'й', 'к', 'л', 'м', 'н', 'о',
	'п', 'р', 'с', 'т', 'у', 'ф', 'х', 'ц', 'ч', 'ш', 'щ', 'ы', 'ь', 'э', 'ю', 'я',
}

// Tag 0110: all assigned characters in U+05B0..U+05F4 (points, letters,
// ligatures, geresh and gershayim). A short page: codes 57..63 are unassigned.
var hebrewRunes = []rune{
	0,
	'ְ', 'ֱ', 'ֲ', 'ֳ', 'ִ', 'ֵ', 'ֶ', 'ַ',
	'ָ', 'ֹ', 'ֺ', 'ֻ', 'ּ', 'ֽ', '־', 'ֿ',
	'׀', 'ׁ', 'ׂ', '׃', 'ׄ', 'ׅ', '׆', 'ׇ',
	'א', 'ב', 'ג', 'ד', 'ה', 'ו', 'ז', 'ח', 'ט', 'י', 'ך', 'כ', 'ל', 'ם', 'מ', 'ן',
	'נ', 'ס', 'ע', 'ף', 'פ', 'ץ', 'צ', 'ק', 'ר', 'ש', 'ת',
	'װ', 'ױ', 'ײ', '׳', '״',
}

// Tag 1000: a Perso-Arabic leaning selection from U+0600..U+06FF: three
// punctuators, hamza, the main letters U+0627..U+063A plus feh/qaf and
// U+0644..U+064A, short vowels, shadda, combining maddah and hamza, the two
// Urdu-only vowels, superscript alef, eleven extended letters for Persian and
// Urdu, and the full stop. A short page: codes 55..63 are unassigned.
var arabicRunes = []rune{
	0,
	'،', '؛', '؟',
	'ء',
	'ا', 'ب', 'ة', 'ت', 'ث', 'ج', 'ح', 'خ', 'د', 'ذ', 'ر', 'ز', 'س', 'ش', 'ص', 'ض',
	'ط', 'ظ', 'ع', 'غ', 'ف', 'ق', 'ل', 'م', 'ن', 'ه', 'و', 'ى', 'ي',
	'َ', 'ُ', 'ِ', 'ّ', 'ٓ', 'ٔ', 'ٖ', 'ٗ',
	'ٰ',
	'ٹ', 'پ', 'چ', 'ڈ', 'ڑ', 'ژ', 'ک', 'گ', 'ں', 'ھ', 'ے',
	'۔',
}

// Tag 1010: a selection from U+0902..U+0965: anusvara and visarga, eleven
// standalone vowels, the 33 core consonants (nukta forms and the southern
// retroflex letters omitted), nukta, ten combining vowels, virama, danda and
// double danda. A short page: codes 61..63 are unassigned.
var devanagariRunes = []rune{
	0,
	'ं', 'ः',
	'अ', 'आ', 'इ', 'ई', 'उ', 'ऊ', 'ऋ', 'ए', 'ऐ', 'ओ', 'औ',
	'क', 'ख', 'ग', 'घ', 'ङ', 'च', 'छ', 'ज', 'झ', 'ञ', 'ट', 'ठ', 'ड', 'ढ', 'ण', 'त',
	'थ', 'द', 'ध', 'न', 'प', 'फ', 'ब', 'भ', 'म', 'य', 'र', 'ल', 'व', 'श', 'ष', 'स',
	'ह',
	'़',
	'ा', 'ि', 'ी', 'ु', 'ू', 'ृ', 'े', 'ै', 'ो', 'ौ',
	'्',
	'।', '॥',
}

// Tag 1011: U+3131..U+3163, the initial part of KS X 1001 row 4.
// A short page: codes 52..63 are unassigned.
var jamoRunes = []rune{
	0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ',
	'ㅀ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ', 'ㅏ',
	'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ',
	'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ',
}

// Tag 1111: U+FF61..U+FF9F, the latter part of JIS X 0201.
var kanaRunes = []rune{
	0, '｡', '｢', '｣', '､', '･', 'ｦ', 'ｧ', 'ｨ', 'ｩ', 'ｪ', 'ｫ', 'ｬ', 'ｭ', 'ｮ', 'ｯ',
	'ｰ', 'ｱ', 'ｲ', 'ｳ', 'ｴ', 'ｵ', 'ｶ', 'ｷ', 'ｸ', 'ｹ', 'ｺ', 'ｻ', 'ｼ', 'ｽ', 'ｾ', 'ｿ',
	'ﾀ', 'ﾁ', 'ﾂ', 'ﾃ', 'ﾄ', 'ﾅ', 'ﾆ', 'ﾇ', 'ﾈ', 'ﾉ', 'ﾊ', 'ﾋ', 'ﾌ', 'ﾍ', 'ﾎ', 'ﾏ',
	'ﾐ', 'ﾑ', 'ﾒ', 'ﾓ', 'ﾔ', 'ﾕ', 'ﾖ', 'ﾗ', 'ﾘ', 'ﾙ', 'ﾚ', 'ﾛ', 'ﾜ', 'ﾝ', 'ﾞ', 'ﾟ',
}
