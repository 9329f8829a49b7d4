package gemini

// ExtractPromptTemplate asks the model for the core event fields as a bare
// JSON object. The text and the current time references are interpolated by
// buildExtractPrompt.
const ExtractPromptTemplate = `
다음 텍스트를 분석하여 캘린더에 저장할 일정 정보를 정확하게 추출해주세요.

텍스트: "%s"

분석 요구사항:

1. 제목(title) 추출:
   - 텍스트의 맥락을 분석하여 가장 적절한 일정 제목을 추출하세요
   - 회의명, 미팅명, 약속명, 이벤트명 등이 있으면 그것을 우선 사용
   - 없으면 텍스트의 핵심 키워드를 조합하여 간결하고 명확한 제목 생성
   - 제목은 50자 이내로 작성하고, 일정의 성격을 명확히 표현

2. 날짜/시간 정보 분석:
   - 텍스트에서 명시된 날짜와 시간을 정확히 파악
   - "내일", "다음주 월요일", "오후 3시" 등의 상대적 표현을 현재 시간 기준으로 계산
   - 날짜만 있고 시간이 없는 경우: 오전 9시로 설정
   - 시간만 있고 날짜가 없는 경우: 오늘 날짜로 설정
   - 시작 시간과 종료 시간을 모두 추출 (종료 시간이 없으면 시작 시간 + 1시간)

3. 일정 내용 요약(description):
   - 텍스트를 캘린더에 저장할 내용으로 요약
   - 핵심 정보만 추출하여 간결하게 작성
   - 원본 텍스트의 중요한 세부사항 포함

4. 장소(location) 추출:
   - 회의실, 주소, 온라인 플랫폼, 건물명 등
   - 텍스트에서 장소 관련 정보가 있으면 추출

5. 참석자(attendees) 추출:
   - 이메일 주소나 이름으로 된 참석자 목록
   - "참석자:", "참가자:", "함께:" 등의 키워드 뒤에 오는 사람들

현재 시간: %s
현재 날짜: %s

중요: 반드시 아래 JSON 형식으로만 응답하세요. 다른 텍스트나 설명은 포함하지 마세요.

{
    "title": "일정 제목",
    "description": "일정 설명",
    "startDate": "YYYY-MM-DDTHH:MM:SS",
    "endDate": "YYYY-MM-DDTHH:MM:SS",
    "location": "장소",
    "attendees": ["참석자1", "참석자2"],
    "reminder": "15분 전"
}

주의사항:
- 반드시 유효한 JSON 형식으로만 응답하세요
- 날짜/시간 형식은 ISO 8601 표준을 따르세요 (YYYY-MM-DDTHH:MM:SS)
- 시간대는 한국 시간(Asia/Seoul)을 기준으로 하세요
- 제목은 50자 이내로 간결하게 작성하세요
- 텍스트에 날짜/시간 정보가 없으면 현재 시간 기준으로 설정하세요
- JSON 외의 다른 텍스트는 절대 포함하지 마세요
- 마크다운 코드 블록을 사용하지 마세요
- 응답은 순수한 JSON 객체만 포함해야 합니다
`

// AnalyzePromptTemplate asks the model for the secondary classification pass:
// event type, participants, structured location, priority and confidence.
const AnalyzePromptTemplate = `
다음 텍스트를 일정 관점에서 상세히 분석해주세요. JSON 형식으로만 응답해주세요.

텍스트: "%s"

분석 요구사항:

1. 일정 유형 분석:
   - meeting: 회의/미팅
   - appointment: 약속/상담
   - event: 이벤트/행사
   - reminder: 알림/할일
   - deadline: 마감일/기한

2. 시간 정보 상세 분석:
   - 명시적 시간: "오후 3시", "14:30" 등
   - 상대적 시간: "내일", "다음주 월요일" 등
   - 기간: "3일간", "1주일" 등
   - 반복: "매주", "매일" 등

3. 참석자 정보:
   - 이메일 주소가 있는 경우에만 포함하세요
   - 이름만 있는 경우는 제외하세요 (Google Calendar API는 유효한 이메일만 허용)
   - 참석자 수 (정확한 숫자 또는 "여러 명" 등)

4. 장소 정보:
   - 구체적 주소
   - 건물/회의실명
   - 온라인 플랫폼 (Zoom, Teams 등)

5. 우선순위/중요도:
   - urgent: 긴급
   - important: 중요
   - normal: 일반
   - low: 낮음

현재 시간: %s
현재 날짜: %s

응답 형식 (JSON만):
{
    "eventType": "meeting|appointment|event|reminder|deadline",
    "timeAnalysis": {
        "explicitTime": "명시된 시간 정보",
        "relativeTime": "상대적 시간 표현",
        "duration": "기간 정보",
        "recurring": "반복 정보"
    },
    "participants": {
        "names": ["참석자1", "참석자2"],
        "count": "참석자 수",
        "emails": ["email1@example.com"]
    },
    "location": {
        "type": "physical|online|hybrid",
        "address": "구체적 주소",
        "room": "회의실/건물명",
        "platform": "온라인 플랫폼"
    },
    "priority": "urgent|important|normal|low",
    "confidence": 0.0-1.0
}

주의사항:
- 참석자 이메일은 유효한 이메일 주소만 포함하세요
- 이름만 있는 경우는 emails 배열에 포함하지 마세요
- JSON 외의 다른 텍스트는 절대 포함하지 마세요
`
