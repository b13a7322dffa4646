package models

// Article 위키백과에서 가져온 문서 원문
type Article struct {
	Title    string // 페이지 제목
	URL      string // 원본 URL (있는 경우)
	Language string // 위키백과 언어 코드 (fr, en ...)
	Content  string // 평문 본문, "== 제목 ==" 형태의 섹션 표시 포함
}

// Section 최상위 제목 하나와 그 아래 본문
type Section struct {
	Title   string // 앞뒤 공백을 제거한 제목
	Heading string // 본문에 나타난 제목 줄 그대로
	Body    string // 제목 줄 끝부터 다음 최상위 제목 직전까지
}
