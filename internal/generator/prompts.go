package generator

const correctPrompt = `Hãy sửa lỗi chính tả và cải thiện chất lượng văn bản sau đây, giữ nguyên ý nghĩa nhưng làm cho văn bản mạch lạc và dễ hiểu hơn:

Văn bản gốc:
%s

Yêu cầu:
1. Sửa lỗi chính tả và ngữ pháp
2. Thêm dấu câu phù hợp
3. Điều chỉnh các từ ngữ không rõ ràng
4. Giữ nguyên thuật ngữ chuyên môn
5. Không thay đổi ý nghĩa của văn bản

Chỉ trả về văn bản đã sửa, không cần giải thích.`

const summaryPrompt = `Với tư cách là một trợ lý học tập chuyên môn về %[1]s, hãy phân tích và tóm tắt nội dung sau đây theo cấu trúc dành cho môn %[1]s:

NỘI DUNG:
%[2]s

Hãy tổ chức bản tóm tắt theo cấu trúc sau:
%[3]s

Hãy trình bày rõ ràng, súc tích và dễ hiểu bằng tiếng Việt.`

const titlePrompt = `Dựa vào nội dung bài giảng sau đây, hãy tạo một tiêu đề ngắn gọn (tối đa 10 từ) phản ánh chủ đề chính của bài:

%s...

Lưu ý:
- Tiêu đề phải ngắn gọn, súc tích
- Không cần ghi "Bài giảng về" hoặc các từ mở đầu tương tự
- Chỉ trả về tiêu đề, không thêm giải thích`

const transcribePrompt = `Chép lại chính xác lời nói trong đoạn ghi âm bài giảng này. Ngôn ngữ của đoạn ghi âm: %s.
Chỉ trả về văn bản đã chép, không thêm tiêu đề, mốc thời gian hay giải thích.`
