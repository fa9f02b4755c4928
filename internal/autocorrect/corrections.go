package autocorrect

// Correction tables, format (wrong, right). Both tables are duplicate-free,
// no entry maps a word to itself, and the Vietnamese and English key sets
// are disjoint; the tests enforce all three.

// vietnameseCorrections covers n/l and ch/tr dialect confusions, i/y
// normalization, tone slips, raw-Telex leftovers and chat abbreviations.
var vietnameseCorrections = [][2]string{
	// n/l consonant confusion
	{"nà", "là"},
	{"nàm", "làm"},
	{"nên", "lên"},
	{"nời", "lời"},
	{"nại", "lại"},
	{"nấy", "lấy"},
	{"nắm", "lắm"},
	{"nâu", "lâu"},
	{"nớn", "lớn"},
	{"núc", "lúc"},
	{"nưng", "lưng"},
	{"nửa", "lửa"},
	{"lăm", "năm"},
	{"lày", "này"},
	{"lói", "nói"},
	{"lếu", "nếu"},
	{"lơi", "nơi"},
	{"lhà", "nhà"},
	{"lhư", "như"},
	{"lhững", "những"},
	// i/y normalization
	{"lí", "lý"},
	{"kí", "ký"},
	{"quí", "quý"},
	{"mĩ", "mỹ"},
	{"tỉ", "tỷ"},
	{"vĩ", "vỹ"},
	// tone and diacritic slips
	{"dể", "dễ"},
	{"củng", "cũng"},
	{"giử", "giữ"},
	{"mổi", "mỗi"},
	{"dử", "dữ"},
	{"nghành", "ngành"},
	{"nghỉa", "nghĩa"},
	{"chuẩng", "chuẩn"},
	// ch/tr confusion
	{"chời", "trời"},
	{"chước", "trước"},
	// raw Telex leftovers
	{"dduwowcj", "được"},
	{"nguwofi", "người"},
	{"khoong", "không"},
	{"vieetj", "việc"},
	{"tooi", "tôi"},
	{"caí", "cái"},
	{"nawm", "năm"},
	{"coong", "công"},
	{"vaf", "và"},
	{"cuar", "của"},
	{"nhuwng", "nhưng"},
	{"raatj", "rất"},
	{"ddeesn", "đến"},
	{"coó", "có"},
	{"thij", "thì"},
	{"moojt", "một"},
	{"hooij", "hỏi"},
	{"trarl", "trả"},
	{"loif", "lỗi"},
	// missing diacritics
	{"duoc", "được"},
	{"nguoi", "người"},
	{"khong", "không"},
	{"viec", "việc"},
	{"den", "đến"},
	{"mot", "một"},
	{"hoi", "hỏi"},
	{"tra", "trả"},
	{"loi", "lỗi"},
	{"cung", "cũng"},
	{"nhu", "như"},
	{"nhung", "nhưng"},
	{"dung", "đúng"},
	{"muon", "muốn"},
	{"dau", "đầu"},
	{"truoc", "trước"},
	{"tren", "trên"},
	{"duoi", "dưới"},
	{"ngoai", "ngoài"},
	// chat abbreviations
	{"rùi", "rồi"},
	{"ròi", "rồi"},
	{"bit", "biết"},
	{"bik", "biết"},
	{"ko", "không"},
	{"hok", "không"},
	{"dc", "được"},
	{"dk", "được"},
	{"đc", "được"},
	{"đk", "được"},
	{"vs", "với"},
	{"cx", "cũng"},
	{"j", "gì"},
	{"z", "vậy"},
	{"v", "vậy"},
	{"ntn", "như thế nào"},
	{"sđt", "số điện thoại"},
	// doubled vowel slips
	{"chùua", "chùa"},
	{"muua", "mua"},
	{"chuua", "chưa"},
	{"nhaa", "nhà"},
	{"thaa", "tha"},
}

// englishCorrections is programming-flavored: letter swaps, doubled-letter
// errors, common identifier typos and contraction fixes.
var englishCorrections = [][2]string{
	// letter swaps
	{"teh", "the"},
	{"taht", "that"},
	{"wiht", "with"},
	{"waht", "what"},
	{"fomr", "from"},
	{"adn", "and"},
	{"nad", "and"},
	{"hte", "the"},
	{"thn", "then"},
	{"htat", "that"},
	{"thsi", "this"},
	{"tihs", "this"},
	{"hwat", "what"},
	{"whta", "what"},
	{"htis", "this"},
	// missing/double letters
	{"occured", "occurred"},
	{"occuring", "occurring"},
	{"occurance", "occurrence"},
	{"occurence", "occurrence"},
	{"seperate", "separate"},
	{"seperately", "separately"},
	{"seperator", "separator"},
	{"definately", "definitely"},
	{"definatly", "definitely"},
	{"definitly", "definitely"},
	{"defintely", "definitely"},
	{"accomodate", "accommodate"},
	{"accomodation", "accommodation"},
	{"neccessary", "necessary"},
	{"necessery", "necessary"},
	{"neccesary", "necessary"},
	{"recieve", "receive"},
	{"reciever", "receiver"},
	{"recieved", "received"},
	{"beleive", "believe"},
	{"beleif", "belief"},
	{"acheive", "achieve"},
	{"acheived", "achieved"},
	{"acheiving", "achieving"},
	{"occassion", "occasion"},
	{"occassional", "occasional"},
	{"embarass", "embarrass"},
	{"embarassing", "embarrassing"},
	{"embarassment", "embarrassment"},
	{"millenium", "millennium"},
	{"millenia", "millennia"},
	{"begining", "beginning"},
	{"comming", "coming"},
	{"runing", "running"},
	{"writting", "writing"},
	{"refered", "referred"},
	{"refering", "referring"},
	{"referance", "reference"},
	{"prefered", "preferred"},
	{"prefering", "preferring"},
	{"commited", "committed"},
	{"commiting", "committing"},
	{"submited", "submitted"},
	{"submiting", "submitting"},
	{"omited", "omitted"},
	{"omiting", "omitting"},
	// silent/missing letters
	{"goverment", "government"},
	{"govermental", "governmental"},
	{"enviroment", "environment"},
	{"enviromental", "environmental"},
	{"restarant", "restaurant"},
	{"resturant", "restaurant"},
	{"restraunt", "restaurant"},
	{"libary", "library"},
	{"libaray", "library"},
	{"febuary", "february"},
	{"wenesday", "wednesday"},
	{"wedensday", "wednesday"},
	{"calender", "calendar"},
	{"calandar", "calendar"},
	{"grammer", "grammar"},
	{"gramer", "grammar"},
	// programming typos
	{"fucntion", "function"},
	{"funciton", "function"},
	{"funtion", "function"},
	{"functoin", "function"},
	{"fnuction", "function"},
	{"funcation", "function"},
	{"retrun", "return"},
	{"reutrn", "return"},
	{"retrn", "return"},
	{"reutn", "return"},
	{"pubilc", "public"},
	{"publc", "public"},
	{"pubic", "public"},
	{"priavte", "private"},
	{"privte", "private"},
	{"pivate", "private"},
	{"proected", "protected"},
	{"protcted", "protected"},
	{"vlaue", "value"},
	{"vluae", "value"},
	{"valeu", "value"},
	{"vaule", "value"},
	{"lenght", "length"},
	{"legnth", "length"},
	{"lenth", "length"},
	{"widht", "width"},
	{"wdith", "width"},
	{"heigth", "height"},
	{"hieght", "height"},
	{"hight", "height"},
	{"calss", "class"},
	{"clss", "class"},
	{"classs", "class"},
	{"improt", "import"},
	{"ipmort", "import"},
	{"imort", "import"},
	{"exprot", "export"},
	{"exoprt", "export"},
	{"exort", "export"},
	{"cosnt", "const"},
	{"conts", "const"},
	{"ocnst", "const"},
	{"interfce", "interface"},
	{"inteface", "interface"},
	{"intrface", "interface"},
	{"defualt", "default"},
	{"deafult", "default"},
	{"defautl", "default"},
	{"defulat", "default"},
	{"tempalte", "template"},
	{"templat", "template"},
	{"tepmlate", "template"},
	{"resposne", "response"},
	{"reponse", "response"},
	{"respone", "response"},
	{"responese", "response"},
	{"reqeust", "request"},
	{"requets", "request"},
	{"reuqest", "request"},
	{"requet", "request"},
	{"conflit", "conflict"},
	{"confilct", "conflict"},
	{"conflcit", "conflict"},
	{"merg", "merge"},
	{"megre", "merge"},
	{"branhc", "branch"},
	{"bracnh", "branch"},
	{"brnach", "branch"},
	{"comit", "commit"},
	{"commti", "commit"},
	{"commitr", "commit"},
	{"parmeter", "parameter"},
	{"paramter", "parameter"},
	{"paraemter", "parameter"},
	{"arguemnt", "argument"},
	{"argumet", "argument"},
	{"agument", "argument"},
	{"varaible", "variable"},
	{"variabel", "variable"},
	{"varible", "variable"},
	{"varialbe", "variable"},
	{"strign", "string"},
	{"stirng", "string"},
	{"sring", "string"},
	{"interger", "integer"},
	{"integr", "integer"},
	{"boolen", "boolean"},
	{"boolaen", "boolean"},
	{"bolean", "boolean"},
	{"arrary", "array"},
	{"arrya", "array"},
	{"arary", "array"},
	{"obejct", "object"},
	{"objetc", "object"},
	{"objet", "object"},
	{"metohd", "method"},
	{"mehod", "method"},
	{"methdo", "method"},
	{"porperty", "property"},
	{"proprety", "property"},
	{"propety", "property"},
	{"attribtue", "attribute"},
	{"atribute", "attribute"},
	{"attribue", "attribute"},
	{"elment", "element"},
	{"elemnt", "element"},
	{"elemenet", "element"},
	{"compnent", "component"},
	{"componet", "component"},
	{"componenet", "component"},
	{"modle", "module"},
	{"moduel", "module"},
	{"pacakge", "package"},
	{"packge", "package"},
	{"pakage", "package"},
	{"depednency", "dependency"},
	{"dependancy", "dependency"},
	{"dependecy", "dependency"},
	{"initalize", "initialize"},
	{"intialize", "initialize"},
	{"initialze", "initialize"},
	{"configuation", "configuration"},
	{"configuraiton", "configuration"},
	{"configration", "configuration"},
	{"excpetion", "exception"},
	{"exeption", "exception"},
	{"exceptoin", "exception"},
	{"implmentation", "implementation"},
	{"implemntation", "implementation"},
	{"implementaion", "implementation"},
	{"authetnication", "authentication"},
	{"authentcation", "authentication"},
	{"autentication", "authentication"},
	{"authorizaiton", "authorization"},
	{"authoriation", "authorization"},
	{"authoirzation", "authorization"},
	{"databse", "database"},
	{"datbase", "database"},
	{"databas", "database"},
	{"repostiory", "repository"},
	{"repositroy", "repository"},
	{"respository", "repository"},
	{"serivce", "service"},
	{"servcie", "service"},
	{"servce", "service"},
	{"cotroller", "controller"},
	{"contoller", "controller"},
	{"controllre", "controller"},
	{"middlware", "middleware"},
	{"midleware", "middleware"},
	{"middlewre", "middleware"},
	// abbreviations
	{"btn", "button"},
	{"msg", "message"},
	{"err", "error"},
	{"cfg", "config"},
	{"env", "environment"},
	{"dev", "development"},
	{"prod", "production"},
	{"usr", "user"},
	{"pwd", "password"},
	{"addr", "address"},
	{"num", "number"},
	{"str", "string"},
	{"arr", "array"},
	{"obj", "object"},
	{"func", "function"},
	{"param", "parameter"},
	{"arg", "argument"},
	{"val", "value"},
	{"var", "variable"},
	{"idx", "index"},
	{"len", "length"},
	{"cnt", "count"},
	{"tmp", "temporary"},
	{"prev", "previous"},
	{"curr", "current"},
	{"src", "source"},
	{"dest", "destination"},
	{"init", "initialize"},
	{"del", "delete"},
	{"upd", "update"},
	{"ins", "insert"},
	{"sel", "select"},
	{"req", "request"},
	{"res", "response"},
	{"resp", "response"},
	{"cb", "callback"},
	{"fn", "function"},
	{"ctx", "context"},
	{"opts", "options"},
	{"props", "properties"},
	{"attrs", "attributes"},
	{"elem", "element"},
	{"elems", "elements"},
	{"doc", "document"},
	{"docs", "documents"},
	{"dir", "directory"},
	{"dirs", "directories"},
	{"pkg", "package"},
	{"pkgs", "packages"},
	{"lib", "library"},
	{"libs", "libraries"},
	{"dep", "dependency"},
	{"deps", "dependencies"},
	{"conf", "configuration"},
	{"auth", "authentication"},
	{"perm", "permission"},
	{"perms", "permissions"},
	// contractions
	{"alot", "a lot"},
	{"cant", "can't"},
	{"wont", "won't"},
	{"dont", "don't"},
	{"doesnt", "doesn't"},
	{"didnt", "didn't"},
	{"hasnt", "hasn't"},
	{"havent", "haven't"},
	{"hadnt", "hadn't"},
	{"isnt", "isn't"},
	{"arent", "aren't"},
	{"wasnt", "wasn't"},
	{"werent", "weren't"},
	{"wouldnt", "wouldn't"},
	{"couldnt", "couldn't"},
	{"shouldnt", "shouldn't"},
	{"thats", "that's"},
	{"whats", "what's"},
	{"heres", "here's"},
	{"theres", "there's"},
	{"wheres", "where's"},
	{"whos", "who's"},
	{"im", "I'm"},
	{"ive", "I've"},
	{"youll", "you'll"},
	{"youve", "you've"},
	{"youd", "you'd"},
	{"theyll", "they'll"},
	{"theyve", "they've"},
	{"theyd", "they'd"},
	{"weve", "we've"},
	{"hes", "he's"},
	{"shes", "she's"},
	{"itll", "it'll"},
}

func buildVietnamese() map[string]string {
	m := make(map[string]string, len(vietnameseCorrections))
	for _, c := range vietnameseCorrections {
		m[c[0]] = c[1]
	}
	return m
}

func buildEnglish() map[string]string {
	m := make(map[string]string, len(englishCorrections))
	for _, c := range englishCorrections {
		m[c[0]] = c[1]
	}
	return m
}

func buildAll() map[string]string {
	m := make(map[string]string, len(vietnameseCorrections)+len(englishCorrections))
	for _, c := range vietnameseCorrections {
		m[c[0]] = c[1]
	}
	for _, c := range englishCorrections {
		m[c[0]] = c[1]
	}
	return m
}

// VietnamesePairs returns a copy of the Vietnamese correction table.
func VietnamesePairs() [][2]string {
	return append([][2]string(nil), vietnameseCorrections...)
}

// EnglishPairs returns a copy of the English correction table.
func EnglishPairs() [][2]string {
	return append([][2]string(nil), englishCorrections...)
}
